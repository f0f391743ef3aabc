package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

type countingLock struct {
	locks   int
	unlocks int
	held    bool
}

func (l *countingLock) Lock() {
	l.locks++
	l.held = true
}

func (l *countingLock) Unlock() {
	l.unlocks++
	l.held = false
}

func TestMixSilentBeforeFormat(t *testing.T) {
	m := NewMixer()
	buf := [][2]float64{{1, 1}, {1, 1}}

	m.Mix(buf)
	for i, s := range buf {
		if s != [2]float64{} {
			t.Errorf("buf[%d] = %v, expected silence", i, s)
		}
	}

	m.PlayMusic(MusicTitle)
	if m.MusicKey() != 0 {
		t.Error("PlayMusic() before SetFormat should do nothing")
	}
}

func TestMixTakesCallerLock(t *testing.T) {
	lock := &countingLock{}
	m := NewMixer()
	m.SetFormat(22050, lock)

	m.Mix(make([][2]float64, 64))
	m.Mix(make([][2]float64, 64))

	if lock.locks != 2 || lock.unlocks != 2 {
		t.Errorf("locks=%d unlocks=%d, expected 2/2", lock.locks, lock.unlocks)
	}
	if lock.held {
		t.Error("lock still held after Mix")
	}
}

func TestPlayMusicProducesSound(t *testing.T) {
	m := NewMixer()
	m.SetFormat(22050, nil)

	m.PlayMusic(MusicTitle)
	if m.MusicKey() != MusicTitle {
		t.Fatalf("MusicKey() = %d, expected %d", m.MusicKey(), MusicTitle)
	}

	buf := make([][2]float64, 256)
	m.Mix(buf)
	loud := false
	for _, s := range buf {
		if s[0] != 0 {
			loud = true
			break
		}
	}
	if !loud {
		t.Error("Mix() produced silence while music is playing")
	}
}

func TestPlayMusicSameKeyIsNoop(t *testing.T) {
	m := NewMixer()
	m.SetFormat(22050, nil)

	m.PlayMusic(MusicTitle)
	m.PlayMusic(MusicTitle)
	if n := m.Playing(); n != 1 {
		t.Errorf("Playing() = %d, expected 1", n)
	}

	m.PlayMusic(99)
	if m.MusicKey() != MusicTitle {
		t.Error("unknown music key should not replace the current music")
	}
}

func TestStopMusic(t *testing.T) {
	m := NewMixer()
	m.SetFormat(22050, nil)

	m.PlayMusic(MusicTitle)
	m.StopMusic()
	if m.MusicKey() != 0 {
		t.Errorf("MusicKey() = %d after StopMusic", m.MusicKey())
	}

	buf := make([][2]float64, 32)
	m.Mix(buf)
	for i, s := range buf {
		if s != [2]float64{} {
			t.Fatalf("buf[%d] = %v, expected silence after StopMusic", i, s)
		}
	}
}

func TestPlayDrainsFiniteStreamer(t *testing.T) {
	m := NewMixer()
	m.SetFormat(8000, nil)

	m.Play(beep.Silence(16))
	if n := m.Playing(); n != 1 {
		t.Fatalf("Playing() = %d, expected 1", n)
	}

	// The first pull drains it, the second drops it.
	m.Mix(make([][2]float64, 64))
	m.Mix(make([][2]float64, 64))
	if n := m.Playing(); n != 0 {
		t.Errorf("Playing() = %d after drain, expected 0", n)
	}
}
