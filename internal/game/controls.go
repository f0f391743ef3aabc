package game

import "github.com/vovakirdan/f2b/internal/core"

// control is a bit set of the inputs the engine reacts to.
type control uint16

const (
	ctlLeft control = 1 << iota
	ctlRight
	ctlUp
	ctlDown
	ctlUse
	ctlEnter
	ctlRun
	ctlJump
)

func readControls(in *core.Snapshot) control {
	var c control
	if in.Dir.Has(core.DirLeft) {
		c |= ctlLeft
	}
	if in.Dir.Has(core.DirRight) {
		c |= ctlRight
	}
	if in.Dir.Has(core.DirUp) {
		c |= ctlUp
	}
	if in.Dir.Has(core.DirDown) {
		c |= ctlDown
	}
	if in.Use {
		c |= ctlUse
	}
	if in.Enter || in.Space {
		c |= ctlEnter
	}
	if in.Shift {
		c |= ctlRun
	}
	if in.Jump {
		c |= ctlJump
	}
	return c
}

// edges keeps one tick of control history for press detection.
type edges struct {
	cur  control
	prev control
}

func (e *edges) update(c control) {
	e.prev = e.cur
	e.cur = c
}

func (e *edges) held(c control) bool {
	return e.cur&c != 0
}

func (e *edges) pressed(c control) bool {
	return e.cur&c != 0 && e.prev&c == 0
}
