package app

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
)

// cutscenePalette is a warm ramp used while clips play.
var cutscenePalette = func() core.Palette {
	var p core.Palette
	for i := 0; i < core.PaletteSize; i++ {
		p[i*3] = byte(i)
		p[i*3+1] = byte(i * 7 / 8)
		p[i*3+2] = byte(i * 5 / 8)
	}
	ui := [][3]byte{
		core.ColorDefault: {0xd7, 0xc4, 0xa1},
		core.ColorDim:     {0x6d, 0x5c, 0x45},
		core.ColorText:    {0xff, 0xf3, 0xd9},
		core.ColorAccent:  {0xff, 0xb3, 0x47},
	}
	for i, c := range ui {
		p[i*3], p[i*3+1], p[i*3+2] = c[0], c[1], c[2]
	}
	return p
}()

// drawCutscene draws the loaded clip into the overlay. The overlay and the
// cutscene palette are set up when a new clip starts.
func (a *App) drawCutscene() {
	clip, ok := a.player.Loaded()
	if !ok {
		return
	}
	base := a.render.Base()
	if a.shownCut != clip.ID || a.render.Overlay().Width() == 0 {
		a.shownCut = clip.ID
		a.render.ResizeOverlay(base.Width(), base.Height())
		a.render.SetPalette(cutscenePalette[:], 0, core.PaletteSize)
	}

	s := a.render.Overlay()
	s.Clear()
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, strings.ToUpper(clip.Name), core.ColorText)
	s.DrawTextCentered(mid-1, fmt.Sprintf("clip %d", int(clip.ID)), core.ColorDim)

	width := core.Clamp(s.Width()-20, 10, 40)
	filled := core.Clamp(int(a.player.Progress()*float64(width)), 0, width)
	s.DrawTextCentered(mid+1, strings.Repeat("━", filled)+strings.Repeat("─", width-filled), core.ColorAccent)

	if a.cfg.Game.Subtitles {
		if sub := a.player.Subtitle(); sub != "" {
			s.DrawTextCentered(s.Height()-3, sub, core.ColorDefault)
		}
	}
	s.DrawTextCentered(s.Height()-1, "space: skip clip   esc: skip all", core.ColorDim)
}

// CurrentClip returns the clip on screen, or cutscene.None.
func (a *App) CurrentClip() cutscene.ClipID {
	if a.machine.Current() != core.ModeCutscene {
		return cutscene.None
	}
	return a.seq.Current()
}
