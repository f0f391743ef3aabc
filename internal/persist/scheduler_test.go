package persist

import (
	"errors"
	"testing"

	"github.com/vovakirdan/f2b/internal/core"
)

type fakeStore struct {
	loads       []int
	saves       []int
	screenshots []int
	loadErr     error
	saveErr     error
	shotErr     error
}

func (f *fakeStore) LoadState(slot int) error {
	f.loads = append(f.loads, slot)
	return f.loadErr
}

func (f *fakeStore) SaveState(slot int) error {
	f.saves = append(f.saves, slot)
	return f.saveErr
}

func (f *fakeStore) SaveScreenshot(slot int) error {
	f.screenshots = append(f.screenshots, slot)
	return f.shotErr
}

func TestRequestDoesNotTouchStore(t *testing.T) {
	store := &fakeStore{}
	s := NewScheduler(store, nil)

	s.RequestSave(1)
	s.RequestLoad(2)
	if len(store.saves) != 0 || len(store.loads) != 0 {
		t.Error("requests must be deferred until Drain")
	}
}

func TestSaveDeferredOutsideSimulation(t *testing.T) {
	store := &fakeStore{}
	s := NewScheduler(store, nil)

	s.RequestSave(3)
	for _, mode := range []core.Mode{core.ModeInventory, core.ModeMenu, core.ModeCutscene, core.ModeCabinet, core.ModeInstaller} {
		if out := s.Drain(mode); out != nil {
			t.Errorf("Drain(%v) serviced %v", mode, out)
		}
	}
	if !s.PendingSave().Pending || s.PendingSave().Slot != 3 {
		t.Fatalf("save should still be pending, got %+v", s.PendingSave())
	}

	out := s.Drain(core.ModeSimulation)
	if len(out) != 1 || out[0].Direction != Save || out[0].Slot != 3 || out[0].Err != nil {
		t.Fatalf("Drain(simulation) = %+v", out)
	}
	s.Drain(core.ModeSimulation)

	if len(store.saves) != 1 || store.saves[0] != 3 {
		t.Errorf("saves = %v, expected exactly one save to slot 3", store.saves)
	}
	if len(store.screenshots) != 1 {
		t.Errorf("screenshots = %v, expected one", store.screenshots)
	}
	if s.PendingSave().Pending {
		t.Error("save should be cleared after Drain")
	}
}

func TestSecondRequestOverwritesFirst(t *testing.T) {
	store := &fakeStore{}
	s := NewScheduler(store, nil)

	s.RequestSave(1)
	s.RequestSave(2)
	s.Drain(core.ModeSimulation)

	if len(store.saves) != 1 || store.saves[0] != 2 {
		t.Errorf("saves = %v, expected only slot 2", store.saves)
	}
}

func TestSaveAndLoadIndependent(t *testing.T) {
	store := &fakeStore{}
	s := NewScheduler(store, nil)

	s.RequestLoad(4)
	s.RequestSave(5)
	out := s.Drain(core.ModeSimulation)

	if len(out) != 2 || out[0].Direction != Load || out[1].Direction != Save {
		t.Fatalf("Drain() = %+v, expected load then save", out)
	}
	if len(store.loads) != 1 || store.loads[0] != 4 {
		t.Errorf("loads = %v", store.loads)
	}
	if len(store.saves) != 1 || store.saves[0] != 5 {
		t.Errorf("saves = %v", store.saves)
	}
}

func TestFailuresClearPendingWithoutRetry(t *testing.T) {
	store := &fakeStore{
		loadErr: errors.New("slot empty"),
		saveErr: errors.New("disk full"),
	}
	s := NewScheduler(store, nil)

	s.RequestLoad(1)
	s.RequestSave(2)
	out := s.Drain(core.ModeSimulation)
	if len(out) != 2 || out[0].Err == nil || out[1].Err == nil {
		t.Fatalf("Drain() = %+v, expected two failures", out)
	}
	if s.PendingLoad().Pending || s.PendingSave().Pending {
		t.Error("failed requests should be cleared")
	}
	if len(store.screenshots) != 0 {
		t.Error("failed save must not take a screenshot")
	}

	s.Drain(core.ModeSimulation)
	if len(store.loads) != 1 || len(store.saves) != 1 {
		t.Errorf("failed requests were retried: loads=%v saves=%v", store.loads, store.saves)
	}
}

func TestScreenshotFailureKeepsSave(t *testing.T) {
	store := &fakeStore{shotErr: errors.New("no thumbnail")}
	s := NewScheduler(store, nil)

	s.RequestSave(7)
	out := s.Drain(core.ModeSimulation)
	if len(out) != 1 || out[0].Err != nil {
		t.Errorf("Drain() = %+v, expected a successful save", out)
	}
}
