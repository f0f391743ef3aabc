package modes

import (
	"testing"
	"time"

	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
)

const frame = time.Second / 60

// recordingMode counts enter/exit calls and returns a scripted next mode.
type recordingMode struct {
	tag     core.Mode
	enters  int
	exits   int
	updates int
	refuse  bool
	next    core.Mode
}

func (r *recordingMode) Enter() bool {
	if r.refuse {
		return false
	}
	r.enters++
	return true
}

func (r *recordingMode) Exit() { r.exits++ }

func (r *recordingMode) Update(_ *Frame) core.Mode {
	r.updates++
	if r.next.Valid() && r.next != r.tag {
		next := r.next
		r.next = r.tag
		return next
	}
	return r.tag
}

func newRecordingSet() (Set, [core.ModeCount]*recordingMode) {
	var set Set
	var recs [core.ModeCount]*recordingMode
	for i := range set {
		rec := &recordingMode{tag: core.Mode(i), next: core.Mode(i)}
		recs[i] = rec
		set[i] = rec
	}
	return set, recs
}

func TestMachineStartRunsEnterOnly(t *testing.T) {
	set, recs := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeCutscene)

	if m.Current() != core.ModeCutscene || m.Pending() != core.ModeCutscene {
		t.Fatalf("current/pending = %v/%v, expected cutscene", m.Current(), m.Pending())
	}
	if recs[core.ModeCutscene].enters != 1 {
		t.Errorf("cutscene enters = %d, expected 1", recs[core.ModeCutscene].enters)
	}
	for _, r := range recs {
		if r.exits != 0 {
			t.Errorf("%v exited during start", r.tag)
		}
	}
}

func TestRequestTakesEffectOnNextTickExactlyOnce(t *testing.T) {
	set, recs := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeSimulation)

	m.RequestMode(core.ModeMenu)
	if m.Current() != core.ModeSimulation {
		t.Fatal("request must not switch before the next tick")
	}

	m.Tick(frame, nil)
	if m.Current() != core.ModeMenu {
		t.Fatalf("Current() = %v, expected menu", m.Current())
	}
	if m.Pending() != core.ModeMenu {
		t.Errorf("Pending() = %v, expected it reset to current", m.Pending())
	}

	for i := 0; i < 5; i++ {
		m.Tick(frame, nil)
	}

	if got := recs[core.ModeSimulation].exits; got != 1 {
		t.Errorf("simulation exits = %d, expected 1", got)
	}
	if got := recs[core.ModeMenu].enters; got != 1 {
		t.Errorf("menu enters = %d, expected 1", got)
	}
	if got := recs[core.ModeMenu].updates; got != 6 {
		t.Errorf("menu updates = %d, expected 6", got)
	}
	if m.Transitions() != 1 {
		t.Errorf("Transitions() = %d, expected 1", m.Transitions())
	}
}

func TestRequestSameModeRunsNoEffects(t *testing.T) {
	set, recs := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeSimulation)

	m.RequestMode(core.ModeSimulation)
	m.Tick(frame, nil)

	sim := recs[core.ModeSimulation]
	if sim.enters != 1 || sim.exits != 0 {
		t.Errorf("enters/exits = %d/%d, expected 1/0", sim.enters, sim.exits)
	}
}

func TestLastRequestBeforeTickWins(t *testing.T) {
	set, recs := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeSimulation)

	m.RequestMode(core.ModeMenu)
	m.RequestMode(core.ModeCabinet)
	m.Tick(frame, nil)

	if m.Current() != core.ModeCabinet {
		t.Errorf("Current() = %v, expected cabinet", m.Current())
	}
	if recs[core.ModeMenu].enters != 0 {
		t.Error("overwritten request should not enter")
	}
}

func TestModeUpdateRequestsNextMode(t *testing.T) {
	set, recs := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeSimulation)

	recs[core.ModeSimulation].next = core.ModeInventory
	m.Tick(frame, nil)
	if m.Current() != core.ModeSimulation || m.Pending() != core.ModeInventory {
		t.Fatalf("after update current/pending = %v/%v", m.Current(), m.Pending())
	}

	m.Tick(frame, nil)
	if m.Current() != core.ModeInventory {
		t.Errorf("Current() = %v, expected inventory", m.Current())
	}
}

func TestRefusedEnterKeepsCurrentMode(t *testing.T) {
	set, recs := newRecordingSet()
	recs[core.ModeInventory].refuse = true
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeSimulation)

	m.RequestMode(core.ModeInventory)
	m.Tick(frame, nil)

	if m.Current() != core.ModeSimulation {
		t.Fatalf("Current() = %v, expected simulation", m.Current())
	}
	if m.Pending() != core.ModeSimulation {
		t.Errorf("Pending() = %v, expected the cancelled request dropped", m.Pending())
	}
	if recs[core.ModeSimulation].updates != 1 {
		t.Errorf("simulation should still update on the cancelled tick")
	}
	if m.Transitions() != 0 {
		t.Errorf("Transitions() = %d, expected 0", m.Transitions())
	}
}

func TestInvalidRequestIgnored(t *testing.T) {
	set, _ := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)
	m.Start(core.ModeSimulation)

	m.RequestMode(core.Mode(42))
	if m.Pending() != core.ModeSimulation {
		t.Errorf("Pending() = %v after invalid request", m.Pending())
	}
}

func TestTickClearsPointerDownEdge(t *testing.T) {
	set, _ := newRecordingSet()
	in := core.NewSnapshot()
	tr := core.NewTranslator(in, nil)
	m := NewMachine(set, in, nil)
	m.Start(core.ModeSimulation)

	tr.PointerEvent(0, 1, 1, true)
	tr.PointerEvent(0, 2, 2, true)
	m.Tick(frame, nil)

	p := in.Pointer(0)
	if p.Prev.Down {
		t.Error("previous down should be cleared after the tick")
	}
	if !p.Cur.Down {
		t.Error("current level state should persist")
	}
}

func TestTickStartsLazily(t *testing.T) {
	set, recs := newRecordingSet()
	m := NewMachine(set, core.NewSnapshot(), nil)

	m.Tick(frame, nil)
	if recs[core.ModeCutscene].enters != 1 {
		t.Errorf("first tick should enter the initial cutscene mode")
	}
}

// The remaining tests drive the real mode implementations.

func newTestMachine(t *testing.T, start core.Mode) (*Machine, *fakeEngine, *fakeRenderer, *cutscene.Sequencer, *core.Snapshot) {
	t.Helper()
	eng := newFakeEngine()
	r := &fakeRenderer{}
	seq := cutscene.NewSequencer(cutscene.DefaultTable(), &instantPlayer{}, cutscene.DefaultOptions())
	in := core.NewSnapshot()
	m := NewMachine(NewSet(eng, seq, r, nil), in, nil)
	m.Start(start)
	return m, eng, r, seq, in
}

func TestInventoryOpenFailureKeepsSimulation(t *testing.T) {
	m, eng, _, _, in := newTestMachine(t, core.ModeSimulation)
	eng.inventoryAvailable = false

	in.Inventory = true
	m.Tick(frame, nil)
	if m.Pending() != core.ModeInventory {
		t.Fatalf("inventory key should request inventory, pending = %v", m.Pending())
	}

	m.Tick(frame, nil)
	if m.Current() != core.ModeSimulation {
		t.Errorf("Current() = %v, expected simulation", m.Current())
	}
	if eng.inventoryOpens != 1 {
		t.Errorf("OpenInventory calls = %d, expected 1", eng.inventoryOpens)
	}
}

func TestSimulationRouting(t *testing.T) {
	tests := []struct {
		name  string
		setup func(in *core.Snapshot, eng *fakeEngine, seq *cutscene.Sequencer)
		want  core.Mode
	}{
		{"inventory key", func(in *core.Snapshot, _ *fakeEngine, _ *cutscene.Sequencer) { in.Inventory = true }, core.ModeInventory},
		{"escape", func(in *core.Snapshot, _ *fakeEngine, _ *cutscene.Sequencer) { in.Escape = true }, core.ModeMenu},
		{"cutscene ready", func(_ *core.Snapshot, _ *fakeEngine, seq *cutscene.Sequencer) { seq.Play(cutscene.ClipIntro, 1) }, core.ModeCutscene},
		{"cabinet items", func(_ *core.Snapshot, eng *fakeEngine, _ *cutscene.Sequencer) { eng.cabinetItems = 2 }, core.ModeCabinet},
		{"inventory beats escape", func(in *core.Snapshot, _ *fakeEngine, _ *cutscene.Sequencer) {
			in.Inventory = true
			in.Escape = true
		}, core.ModeInventory},
		{"nothing", func(*core.Snapshot, *fakeEngine, *cutscene.Sequencer) {}, core.ModeSimulation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, eng, _, seq, in := newTestMachine(t, core.ModeSimulation)
			seq.Play(cutscene.None, 0)
			tt.setup(in, eng, seq)

			m.Tick(frame, nil)
			m.Tick(frame, nil)
			if m.Current() != tt.want {
				t.Errorf("Current() = %v, expected %v", m.Current(), tt.want)
			}
		})
	}
}

func TestSimulationHandlesLevelChangeBeforeTick(t *testing.T) {
	m, eng, _, seq, _ := newTestMachine(t, core.ModeSimulation)
	seq.Play(cutscene.None, 0)

	eng.changeLevel = true
	eng.endGame = true
	m.Tick(frame, nil)
	if len(eng.initLevels) != 1 || !eng.initLevels[0] {
		t.Fatalf("InitLevel calls = %v, expected one restart", eng.initLevels)
	}

	m.Tick(frame, nil)
	if len(eng.initLevels) != 2 || eng.initLevels[1] {
		t.Errorf("InitLevel calls = %v, expected end game handled next", eng.initLevels)
	}
	if eng.ticks != 2 {
		t.Errorf("Tick calls = %d, expected 2", eng.ticks)
	}
}

func TestSimulationInstallsGameButtons(t *testing.T) {
	m, _, _, seq, _ := newTestMachine(t, core.ModeSimulation)
	seq.Play(cutscene.None, 0)

	var buttons ButtonMap
	m.Tick(frame, &buttons)
	if buttons != GameButtons {
		t.Errorf("buttons = %v, expected game mapping", buttons)
	}
}

func TestCutsceneExitRestoresOverlayAndPalette(t *testing.T) {
	m, eng, r, seq, _ := newTestMachine(t, core.ModeCutscene)
	seq.Play(cutscene.ClipGenDeb, 0)

	// The instant player finishes every clip on its first update.
	m.Tick(frame, nil)
	if m.Pending() != core.ModeSimulation {
		t.Fatalf("Pending() = %v, expected simulation", m.Pending())
	}
	m.Tick(frame, nil)

	if m.Current() != core.ModeSimulation {
		t.Fatalf("Current() = %v, expected simulation", m.Current())
	}
	if r.overlayW != 0 || r.overlayH != 0 || r.overlayResizes != 1 {
		t.Errorf("overlay = %dx%d after %d resizes", r.overlayW, r.overlayH, r.overlayResizes)
	}
	if r.paletteCount != core.PaletteSize {
		t.Errorf("SetPalette count = %d, expected %d", r.paletteCount, core.PaletteSize)
	}
	if eng.paletteUpdates != 1 {
		t.Errorf("UpdatePalette calls = %d, expected 1", eng.paletteUpdates)
	}
	if eng.resets != 0 {
		t.Error("opening credits must not reset progress")
	}
}

func TestCutsceneCompletionResetsProgress(t *testing.T) {
	m, eng, _, seq, _ := newTestMachine(t, core.ModeSimulation)
	seq.Play(cutscene.ClipClosingMGM, 0)

	for i := 0; i < 10 && eng.resets == 0; i++ {
		m.Tick(frame, nil)
	}
	if eng.resets != 1 {
		t.Fatalf("ResetProgress calls = %d, expected 1", eng.resets)
	}
	m.Tick(frame, nil)
	if m.Current() != core.ModeSimulation {
		t.Errorf("Current() = %v, expected simulation", m.Current())
	}
}

func TestCutsceneGameOverResetsProgress(t *testing.T) {
	m, eng, _, seq, _ := newTestMachine(t, core.ModeCutscene)
	seq.Play(cutscene.ClipGenDeb, 0)
	eng.gameOver = true

	m.Tick(frame, nil)
	if eng.resets != 1 {
		t.Errorf("ResetProgress calls = %d, expected 1", eng.resets)
	}
}

func TestCutsceneEscapeAbandonsSequence(t *testing.T) {
	eng := newFakeEngine()
	player := &instantPlayer{hold: true}
	seq := cutscene.NewSequencer(cutscene.DefaultTable(), player, cutscene.DefaultOptions())
	seq.Play(cutscene.ClipLogoEA, 0)
	in := core.NewSnapshot()
	m := NewMachine(NewSet(eng, seq, &fakeRenderer{}, nil), in, nil)
	m.Start(core.ModeCutscene)

	m.Tick(frame, nil)
	if m.Pending() != core.ModeCutscene {
		t.Fatal("held clip should keep playing")
	}

	in.Escape = true
	m.Tick(frame, nil)
	if in.Escape {
		t.Error("escape should be consumed")
	}
	if m.Pending() != core.ModeSimulation {
		t.Errorf("Pending() = %v, expected simulation after escape", m.Pending())
	}
	if seq.Active() {
		t.Error("sequence should be abandoned")
	}
}

func TestInventoryClosesOnKey(t *testing.T) {
	m, eng, _, seq, in := newTestMachine(t, core.ModeSimulation)
	seq.Play(cutscene.None, 0)

	m.RequestMode(core.ModeInventory)
	m.Tick(frame, nil)
	if m.Current() != core.ModeInventory {
		t.Fatalf("Current() = %v, expected inventory", m.Current())
	}

	in.Escape = true
	m.Tick(frame, nil)
	if eng.inventoryCloses != 1 {
		t.Errorf("CloseInventory calls = %d, expected 1", eng.inventoryCloses)
	}
	m.Tick(frame, nil)
	if m.Current() != core.ModeSimulation {
		t.Errorf("Current() = %v, expected simulation", m.Current())
	}
}

func TestCabinetLeavesWhenEmpty(t *testing.T) {
	m, eng, _, seq, _ := newTestMachine(t, core.ModeSimulation)
	seq.Play(cutscene.None, 0)
	eng.cabinetItems = 1

	m.Tick(frame, nil)
	m.Tick(frame, nil)
	if m.Current() != core.ModeCabinet || eng.cabinetOpens != 1 {
		t.Fatalf("Current() = %v, opens = %d", m.Current(), eng.cabinetOpens)
	}

	eng.cabinetItems = 0
	m.Tick(frame, nil)
	m.Tick(frame, nil)
	if m.Current() != core.ModeSimulation {
		t.Errorf("Current() = %v, expected simulation", m.Current())
	}
	if eng.cabinetCloses != 1 {
		t.Errorf("CloseCabinet calls = %d, expected 1", eng.cabinetCloses)
	}
}

func TestMenuLeavesWhenDoneOrEscape(t *testing.T) {
	for _, viaEscape := range []bool{false, true} {
		m, eng, _, seq, in := newTestMachine(t, core.ModeMenu)
		seq.Play(cutscene.None, 0)

		var buttons ButtonMap
		m.Tick(frame, &buttons)
		if buttons != MenuButtons {
			t.Errorf("buttons = %v, expected menu mapping", buttons)
		}
		if m.Pending() != core.ModeMenu {
			t.Fatalf("menu left early")
		}

		if viaEscape {
			in.Escape = true
		} else {
			eng.menuDone = true
		}
		m.Tick(frame, nil)
		m.Tick(frame, nil)
		if m.Current() != core.ModeSimulation {
			t.Errorf("escape=%v: Current() = %v, expected simulation", viaEscape, m.Current())
		}
		if eng.menuCloses != 1 {
			t.Errorf("escape=%v: CloseMenu calls = %d, expected 1", viaEscape, eng.menuCloses)
		}
	}
}

func TestInstallerNeverLeaves(t *testing.T) {
	m, eng, _, _, in := newTestMachine(t, core.ModeInstaller)

	in.Escape = true
	in.Inventory = true
	for i := 0; i < 10; i++ {
		m.Tick(frame, nil)
	}
	if m.Current() != core.ModeInstaller {
		t.Errorf("Current() = %v, expected installer", m.Current())
	}
	if eng.installerUpdates != 10 {
		t.Errorf("UpdateInstaller calls = %d, expected 10", eng.installerUpdates)
	}
}
