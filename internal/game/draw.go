package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/f2b/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '@'
	WallChar    = '█'
	FloorChar   = '·'
	HazardChar  = '▲'
	ExitChar    = '▣'
	CabinetChar = '₵'
	MedkitChar  = '✚'
	HeartChar   = '♥'
)

// Draw renders the view of mode. Cutscenes are drawn by the caller.
func (e *Engine) Draw(s *core.Screen, mode core.Mode) {
	s.Clear()
	if mode == core.ModeInstaller {
		e.drawInstaller(s)
		return
	}

	ox := (s.Width() - e.room.Width) / 2
	oy := (s.Height() - e.room.Height - 2) / 2
	e.origin = [2]int{ox, oy}
	e.drawRoom(s, ox, oy)
	e.drawHUD(s)

	switch mode {
	case core.ModeInventory:
		e.drawInventory(s)
	case core.ModeCabinet:
		e.drawCabinet(s)
	case core.ModeMenu:
		e.drawMenu(s)
	}
}

func (e *Engine) drawRoom(s *core.Screen, ox, oy int) {
	for y := 0; y < e.room.Height; y++ {
		for x := 0; x < e.room.Width; x++ {
			r, c := cellGlyph(e.room.At(x, y))
			s.Set(ox+x, oy+y, r, c)
		}
	}
	c := core.ColorText
	if e.player.Shield {
		c = core.ColorOK
	}
	s.Set(ox+e.player.X, oy+e.player.Y, PlayerChar, c)
}

func cellGlyph(c Cell) (rune, core.Color) {
	switch c {
	case CellWall:
		return WallChar, core.ColorDim
	case CellHazard:
		return HazardChar, core.ColorWarn
	case CellExit:
		return ExitChar, core.ColorAccent
	case CellCabinet:
		return CabinetChar, core.ColorAccent
	case CellMedkit:
		return MedkitChar, core.ColorOK
	default:
		return FloorChar, core.ColorDim
	}
}

func (e *Engine) drawHUD(s *core.Screen) {
	y := s.Height() - 2
	hearts := strings.Repeat(string(HeartChar), max(e.player.Health, 0))
	hud := fmt.Sprintf(" Level %s  %s  Lives %d  Items %d ",
		e.LevelName(), hearts, e.player.Lives, len(e.items))
	s.DrawText(0, y, hud, core.ColorDefault)
	if e.cheats != 0 {
		s.DrawText(s.Width()-7, y, "[CHEAT]", core.ColorWarn)
	}
	if e.notice != "" {
		s.DrawTextCentered(y+1, e.notice, core.ColorAccent)
	}
}

// drawList draws a titled box of entries with the selection marked.
func drawList(s *core.Screen, title string, entries []string, selected int) {
	w := len([]rune(title)) + 4
	for _, entry := range entries {
		w = max(w, len([]rune(entry))+6)
	}
	h := len(entries) + 2
	r := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, ' ', core.ColorDefault)
		}
	}
	s.DrawBox(r, core.ColorAccent)
	s.DrawText(r.X+2, r.Y, title, core.ColorText)

	for i, entry := range entries {
		c := core.ColorDefault
		prefix := "  "
		if i == selected {
			c = core.ColorText
			prefix = "> "
		}
		s.DrawText(r.X+2, r.Y+1+i, prefix+entry, c)
	}
}

func (e *Engine) drawInventory(s *core.Screen) {
	entries := make([]string, len(e.items))
	for i, item := range e.items {
		entries[i] = string(item)
	}
	drawList(s, "Inventory", entries, e.inventory.selected)
}

func (e *Engine) drawCabinet(s *core.Screen) {
	entries := make([]string, len(e.cabinet.items))
	for i, item := range e.cabinet.items {
		entries[i] = string(item)
	}
	drawList(s, "Cabinet", entries, e.cabinet.selected)
}

func (e *Engine) drawMenu(s *core.Screen) {
	entries := make([]string, menuEntries)
	for i, label := range menuLabels {
		switch i {
		case menuSave, menuLoad:
			entries[i] = fmt.Sprintf("%s  < slot %d >", label, e.menu.slot)
		default:
			entries[i] = label
		}
	}
	drawList(s, "Menu", entries, e.menu.selected)
}

func (e *Engine) drawInstaller(s *core.Screen) {
	y := s.Height()/2 - 1
	s.DrawTextCentered(y, "Installing data files", core.ColorText)

	width := core.Clamp(s.Width()-20, 10, 50)
	filled := int(e.InstallerProgress() * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	s.DrawTextCentered(y+2, bar, core.ColorAccent)

	if e.installer.done {
		s.DrawTextCentered(y+4, "Done", core.ColorOK)
	}
}
