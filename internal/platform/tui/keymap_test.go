package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f2b/internal/core"
)

func TestKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.KeyCode
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.KeyCode{core.KeyLeft}},
		{"wasd", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, []core.KeyCode{core.KeyUp}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.KeyCode{core.KeySpace}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []core.KeyCode{core.KeyEscape}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.KeyCode{core.KeyReturn}},
		{"inventory", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}, []core.KeyCode{core.KeyI}},
		{"number", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, []core.KeyCode{core.Key3}},
		{"shifted arrow", tea.KeyMsg{Type: tea.KeyShiftRight}, []core.KeyCode{core.KeyShift, core.KeyRight}},
		{"cheat", tea.KeyMsg{Type: tea.KeyCtrlL}, []core.KeyCode{core.KeyCheatLifeCounter}},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Lookup(tt.msg)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	full := km.FullHelp()
	if len(full) != 2 || len(full[0]) != len(km.game) {
		t.Errorf("FullHelp() rows = %d", len(full))
	}
}
