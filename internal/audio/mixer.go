// Package audio implements the pull-style mix callback handed to the
// platform's audio thread. The platform supplies the lock that guards each
// pull; the mixer takes the same lock when the game thread changes what
// is playing and does no locking of its own.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// MusicTitle is the music key started when the mix callback is set up.
const MusicTitle = 1

// themes maps music keys to the base frequency of a generated drone.
var themes = map[int]float64{
	MusicTitle: 110.0,
	2:          146.83,
	3:          164.81,
}

// Mixer mixes every playing streamer into the platform buffer.
type Mixer struct {
	lock  sync.Locker
	rate  beep.SampleRate
	mixer *beep.Mixer

	music    *beep.Ctrl
	musicKey int
	volume   float64
}

// NewMixer creates a mixer with no format. Mix returns silence until
// SetFormat is called.
func NewMixer() *Mixer {
	return &Mixer{
		mixer:  &beep.Mixer{},
		volume: 0.5,
	}
}

// SetFormat sets the output sample rate and the caller's lock. A nil lock
// is treated as a no-op lock.
func (m *Mixer) SetFormat(rate int, lock sync.Locker) {
	if lock == nil {
		lock = noLock{}
	}
	m.lock = lock
	m.rate = beep.SampleRate(rate)
}

// SampleRate returns the configured rate, or 0 before SetFormat.
func (m *Mixer) SampleRate() int {
	return int(m.rate)
}

// Mix fills buf with the next samples. It is the pull callback called from
// the platform's audio thread.
func (m *Mixer) Mix(buf [][2]float64) {
	if m.rate == 0 {
		clear(buf)
		return
	}
	m.lock.Lock()
	n, _ := m.mixer.Stream(buf)
	m.lock.Unlock()
	clear(buf[n:])
}

// Play adds a streamer to the mix. It is dropped from the mix once drained.
func (m *Mixer) Play(s beep.Streamer) {
	if m.rate == 0 {
		return
	}
	m.lock.Lock()
	m.mixer.Add(s)
	m.lock.Unlock()
}

// PlayMusic starts the music for key, replacing the current music. Playing
// the key that is already playing does nothing.
func (m *Mixer) PlayMusic(key int) {
	if m.rate == 0 || key == m.musicKey {
		return
	}
	freq, ok := themes[key]
	if !ok {
		return
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil
	}
	m.music = &beep.Ctrl{Streamer: newVolume(newDrone(freq, m.rate), m.volume)}
	m.musicKey = key
	m.mixer.Add(m.music)
}

// StopMusic stops the current music.
func (m *Mixer) StopMusic() {
	if m.music == nil {
		return
	}
	m.lock.Lock()
	m.music.Paused = true
	m.music.Streamer = nil
	m.music = nil
	m.musicKey = 0
	m.lock.Unlock()
}

// MusicKey returns the key of the playing music, or 0.
func (m *Mixer) MusicKey() int {
	return m.musicKey
}

// Playing returns the number of streamers in the mix.
func (m *Mixer) Playing() int {
	if m.rate == 0 {
		return 0
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.mixer.Len()
}

// Close drops everything from the mix.
func (m *Mixer) Close() {
	if m.rate == 0 {
		return
	}
	m.lock.Lock()
	m.mixer.Clear()
	m.music = nil
	m.musicKey = 0
	m.lock.Unlock()
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// newVolume scales s linearly by vol.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// drone is an endless two-voice sine pad.
type drone struct {
	freq  float64
	phase [2]float64
	rate  beep.SampleRate
}

func newDrone(freq float64, rate beep.SampleRate) beep.Streamer {
	return &drone{freq: freq, rate: rate}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	step := d.freq / float64(d.rate)
	for i := range samples {
		root := math.Sin(2 * math.Pi * d.phase[0])
		fifth := math.Sin(2 * math.Pi * d.phase[1])
		v := 0.5 * (root + 0.5*fifth)
		samples[i][0] = v
		samples[i][1] = v

		d.phase[0] += step
		d.phase[0] -= math.Floor(d.phase[0])
		d.phase[1] += step * 1.5
		d.phase[1] -= math.Floor(d.phase[1])
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
