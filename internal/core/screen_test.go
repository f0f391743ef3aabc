package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorAccent)
	if got := s.Get(5, 5); got.Rune != 'X' || got.Color != ColorAccent {
		t.Errorf("Get(5, 5) = %+v, expected X with accent color", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', 0)
	s.Set(100, 0, 'A', 0)
	s.Set(0, -1, 'A', 0)
	s.Set(0, 100, 'A', 0)

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenResizeToZeroHidesOverlay(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "abc", ColorText)

	s.Resize(0, 0)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("Resize(0, 0) left %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render empty, got %q", s.String())
	}

	s.Resize(10, 4)
	if s.Row(0) != strings.Repeat(" ", 10) {
		t.Errorf("regrown screen should be blank, got %q", s.Row(0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "hello", ColorText)

	s.Resize(3, 2)
	if s.Row(0) != "hel" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "hel")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorText)

	x := (20 - 2) / 2
	if s.Get(x, 2).Rune != 'H' || s.Get(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDim)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1).Rune != '─' || s.Get(1, 2).Rune != '│' {
		t.Error("box edges not drawn")
	}
}

func TestPaletteSet(t *testing.T) {
	var p Palette
	p.Set([]byte{1, 2, 3, 4, 5, 6}, 10, 2)

	r, g, b := p.RGB(10)
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("RGB(10) = %d,%d,%d", r, g, b)
	}
	r, g, b = p.RGB(11)
	if r != 4 || g != 5 || b != 6 {
		t.Errorf("RGB(11) = %d,%d,%d", r, g, b)
	}

	// Short data stops the copy instead of panicking.
	p.Set([]byte{9, 9}, 0, 4)
	if r, _, _ := p.RGB(0); r != 0 {
		t.Errorf("partial triplet should be ignored, got %d", r)
	}

	// Entries past the end are dropped.
	p.Set([]byte{7, 7, 7, 8, 8, 8}, PaletteSize-1, 2)
	if r, _, _ := p.RGB(PaletteSize - 1); r != 7 {
		t.Errorf("last entry = %d, expected 7", r)
	}
}
