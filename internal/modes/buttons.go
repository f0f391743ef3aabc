package modes

import "github.com/vovakirdan/f2b/internal/core"

// Button is a gamepad button whose meaning depends on the active mode.
type Button int

const (
	ButtonCircle Button = iota
	ButtonCross
	ButtonDown
	ButtonLeft
	ButtonUp
	ButtonRight
	ButtonCount
)

// ButtonMap maps gamepad buttons to key codes. KeyNone leaves a button
// unbound. The host reads it after every tick.
type ButtonMap [ButtonCount]core.KeyCode

// Key returns the key bound to b.
func (m *ButtonMap) Key(b Button) core.KeyCode {
	if m == nil || b < 0 || b >= ButtonCount {
		return core.KeyNone
	}
	return m[b]
}

// GameButtons is the mapping used while the simulation runs.
var GameButtons = ButtonMap{
	ButtonCircle: core.KeyReturn,
	ButtonCross:  core.KeySpace,
	ButtonDown:   core.KeyU,
	ButtonLeft:   core.KeyNone,
	ButtonUp:     core.KeyCtrl,
	ButtonRight:  core.KeyNone,
}

// MenuButtons is the mapping used while the menu is open.
var MenuButtons = ButtonMap{
	ButtonCircle: core.KeyNone,
	ButtonCross:  core.KeyReturn,
	ButtonDown:   core.KeyDown,
	ButtonLeft:   core.KeyLeft,
	ButtonUp:     core.KeyUp,
	ButtonRight:  core.KeyRight,
}

// install copies src into dst when the host supplied a map.
func install(dst *ButtonMap, src ButtonMap) {
	if dst != nil {
		*dst = src
	}
}
