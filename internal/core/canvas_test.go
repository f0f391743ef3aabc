package core

import "testing"

func TestCanvasComposesOverlay(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Base().DrawText(0, 1, "ab", ColorDefault)

	c.DrawOverlay()
	if got := c.Frame().Row(1); got != "ab        " {
		t.Errorf("frame row = %q without overlay", got)
	}

	c.ResizeOverlay(4, 1)
	c.Overlay().DrawText(0, 0, "CLIP", ColorText)
	c.DrawOverlay()
	if got := c.Frame().Row(1); got != "ab CLIP   " {
		t.Errorf("frame row = %q with overlay", got)
	}

	c.ResizeOverlay(0, 0)
	c.DrawOverlay()
	if got := c.Frame().Row(1); got != "ab        " {
		t.Errorf("frame row = %q after hiding overlay", got)
	}
	if c.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", c.Frames())
	}
}

func TestCanvasResizeScreen(t *testing.T) {
	c := NewCanvas(10, 3)
	c.ResizeScreen(20, 5, 4.0/3.0)

	if c.Base().Width() != 20 || c.Frame().Height() != 5 {
		t.Errorf("sizes base=%dx%d frame=%dx%d", c.Base().Width(), c.Base().Height(), c.Frame().Width(), c.Frame().Height())
	}
	if c.Aspect() != 4.0/3.0 {
		t.Errorf("Aspect() = %v", c.Aspect())
	}
}

func TestCanvasSetPalette(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetPalette([]byte{1, 2, 3, 4, 5, 6}, 3, 2)

	if r, g, b := c.Palette().RGB(4); r != 4 || g != 5 || b != 6 {
		t.Errorf("RGB(4) = %d,%d,%d", r, g, b)
	}
}
