package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/f2b/internal/core"
)

// styleCache maps palette indexes to lipgloss styles for one palette.
type styleCache struct {
	palette core.Palette
	styles  map[core.Color]lipgloss.Style
}

func newStyleCache() *styleCache {
	return &styleCache{styles: make(map[core.Color]lipgloss.Style)}
}

// style returns the foreground style for c under p. The cache is dropped
// when the palette changes.
func (sc *styleCache) style(p *core.Palette, c core.Color) lipgloss.Style {
	if sc.palette != *p {
		sc.palette = *p
		clear(sc.styles)
	}
	if st, ok := sc.styles[c]; ok {
		return st
	}
	r, g, b := p.RGB(c)
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	sc.styles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p *core.Palette) string {
	return newStyleCache().render(s, p)
}

func (sc *styleCache) render(s *core.Screen, p *core.Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(sc.style(p, startColor).Render(run.String()))
		}
	}
	return sb.String()
}
