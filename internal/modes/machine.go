// Package modes implements the run-loop state machine. Each presentation
// mode is a Mode with its own enter, exit and update behavior; the Machine
// decides which one is current and runs transition effects exactly once, on
// the tick boundary after a mode was requested.
package modes

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/core"
)

// Frame is the per-tick context handed to the active mode.
type Frame struct {
	Elapsed time.Duration
	Input   *core.Snapshot

	// Buttons may be nil when the host has no gamepad.
	Buttons *ButtonMap
}

// Mode is the behavior attached to one core.Mode.
type Mode interface {
	// Enter runs the enter effects. Returning false cancels the transition
	// and the machine stays in the previous mode.
	Enter() bool

	// Exit runs the exit effects.
	Exit()

	// Update runs one tick and returns the mode to switch to. Returning the
	// mode's own tag means "stay".
	Update(f *Frame) core.Mode
}

// Set holds one Mode per core.Mode.
type Set [core.ModeCount]Mode

// Machine is the mode state machine.
type Machine struct {
	modes   Set
	input   *core.Snapshot
	logger  *log.Logger
	current core.Mode
	pending core.Mode
	started bool

	transitions int
}

// NewMachine creates a machine over modes, reading input from in.
// A nil logger discards log output.
func NewMachine(modes Set, in *core.Snapshot, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		modes:   modes,
		input:   in,
		logger:  logger,
		current: core.ModeCutscene,
		pending: core.ModeCutscene,
	}
}

// Start enters the initial mode. It runs enter effects without any exit
// effects. If the start mode refuses to enter, the machine falls back to
// the simulation.
func (m *Machine) Start(mode core.Mode) {
	if !mode.Valid() {
		mode = core.ModeCutscene
	}
	m.started = true
	if !m.modes[mode].Enter() {
		m.logger.Warn("start mode refused to enter", "mode", mode)
		mode = core.ModeSimulation
		m.modes[mode].Enter()
	}
	m.current = mode
	m.pending = mode
	m.logger.Debug("run loop started", "mode", mode)
}

// Current returns the active mode.
func (m *Machine) Current() core.Mode {
	return m.current
}

// Pending returns the mode that becomes current on the next tick.
func (m *Machine) Pending() core.Mode {
	return m.pending
}

// Transitions returns the number of completed transitions.
func (m *Machine) Transitions() int {
	return m.transitions
}

// RequestMode schedules a switch to mode on the next tick. The request may
// not take effect: a mode can refuse to enter.
func (m *Machine) RequestMode(mode core.Mode) {
	if !mode.Valid() {
		return
	}
	m.pending = mode
}

// Tick processes one frame: a pending transition, then the active mode's
// update, then the end-of-tick pointer edge reset.
func (m *Machine) Tick(elapsed time.Duration, buttons *ButtonMap) {
	if !m.started {
		m.Start(m.current)
	}

	if m.pending != m.current {
		m.transition(m.pending)
	}
	m.pending = m.current

	next := m.modes[m.current].Update(&Frame{
		Elapsed: elapsed,
		Input:   m.input,
		Buttons: buttons,
	})
	if next != m.current {
		m.RequestMode(next)
	}

	m.input.EndTick()
}

func (m *Machine) transition(to core.Mode) {
	from := m.current
	m.modes[from].Exit()
	if !m.modes[to].Enter() {
		m.logger.Debug("mode transition cancelled", "from", from, "to", to)
		return
	}
	m.current = to
	m.transitions++
	m.logger.Debug("mode transition", "from", from, "to", to)
}
