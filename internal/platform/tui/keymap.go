package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f2b/internal/core"
)

// binding ties a terminal key binding to a platform key code.
type binding struct {
	key.Binding
	code core.KeyCode
}

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	game       []binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	bind := func(code core.KeyCode, help string, keys ...string) binding {
		return binding{
			Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
			code:    code,
		}
	}
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		game: []binding{
			bind(core.KeyLeft, "left", "left", "a"),
			bind(core.KeyRight, "right", "right", "d"),
			bind(core.KeyUp, "up", "up", "w"),
			bind(core.KeyDown, "down", "down", "s"),
			bind(core.KeySpace, "action", " "),
			bind(core.KeyReturn, "select", "enter"),
			bind(core.KeyEscape, "menu", "esc"),
			bind(core.KeyTab, "tab", "tab"),
			bind(core.KeyShift, "run", "shift+up", "shift+down", "shift+left", "shift+right", "r"),
			bind(core.KeyI, "inventory", "i"),
			bind(core.KeyJ, "jump", "j"),
			bind(core.KeyU, "use", "u"),
			bind(core.Key1, "1", "1"),
			bind(core.Key2, "2", "2"),
			bind(core.Key3, "3", "3"),
			bind(core.Key4, "4", "4"),
			bind(core.Key5, "5", "5"),
			bind(core.KeyPageUp, "step forward", "pgup"),
			bind(core.KeyPageDown, "step back", "pgdown"),
			bind(core.KeyFarNear, "far/near", "f"),
			bind(core.KeyCheatLifeCounter, "cheat", "ctrl+l"),
		},
	}
}

// Lookup returns the key codes bound to msg. Shifted arrows report the
// run modifier and the direction.
func (k KeyMap) Lookup(msg tea.KeyMsg) []core.KeyCode {
	var codes []core.KeyCode
	for _, b := range k.game {
		if key.Matches(msg, b.Binding) {
			codes = append(codes, b.code)
		}
	}
	switch msg.Type {
	case tea.KeyShiftUp:
		codes = append(codes, core.KeyUp)
	case tea.KeyShiftDown:
		codes = append(codes, core.KeyDown)
	case tea.KeyShiftLeft:
		codes = append(codes, core.KeyLeft)
	case tea.KeyShiftRight:
		codes = append(codes, core.KeyRight)
	}
	return codes
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range k.game {
		switch b.code {
		case core.KeySpace, core.KeyEscape, core.KeyI, core.KeyJ, core.KeyU:
			out = append(out, b.Binding)
		}
	}
	return append(out, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	var row []key.Binding
	for _, b := range k.game {
		row = append(row, b.Binding)
	}
	return [][]key.Binding{row, {k.Screenshot, k.Quit}}
}
