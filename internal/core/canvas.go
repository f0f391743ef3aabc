package core

// Canvas is a headless render surface: a base screen the simulation draws
// into, an overlay screen used by cutscenes, and the active palette.
// DrawOverlay composes both into the presented frame.
type Canvas struct {
	base    *Screen
	overlay *Screen
	frame   *Screen
	palette Palette
	aspect  float64
	frames  int
}

// NewCanvas creates a canvas of the given size with no overlay.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		base:    NewScreen(width, height),
		overlay: NewScreen(0, 0),
		frame:   NewScreen(width, height),
	}
}

// Base returns the screen the simulation draws into.
func (c *Canvas) Base() *Screen {
	return c.base
}

// Overlay returns the overlay screen. It is empty while hidden.
func (c *Canvas) Overlay() *Screen {
	return c.overlay
}

// Frame returns the last composed frame.
func (c *Canvas) Frame() *Screen {
	return c.frame
}

// Palette returns the active palette.
func (c *Canvas) Palette() *Palette {
	return &c.palette
}

// Aspect returns the aspect ratio to keep, or 0 to stretch.
func (c *Canvas) Aspect() float64 {
	return c.aspect
}

// Frames returns the number of composed frames.
func (c *Canvas) Frames() int {
	return c.frames
}

// ResizeOverlay resizes the overlay. A zero size hides it.
func (c *Canvas) ResizeOverlay(w, h int) {
	c.overlay.Resize(w, h)
	c.overlay.Clear()
}

// SetPalette replaces count palette entries starting at start.
func (c *Canvas) SetPalette(data []byte, start, count int) {
	c.palette.Set(data, start, count)
}

// ResizeScreen resizes the base screen and the frame.
func (c *Canvas) ResizeScreen(w, h int, aspect float64) {
	c.base.Resize(w, h)
	c.frame.Resize(w, h)
	c.aspect = aspect
}

// DrawOverlay composes the base screen and the centered overlay into the
// frame.
func (c *Canvas) DrawOverlay() {
	w, h := c.frame.Width(), c.frame.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.base.Get(x, y)
			c.frame.Set(x, y, cell.Rune, cell.Color)
		}
	}

	ow, oh := c.overlay.Width(), c.overlay.Height()
	ox, oy := (w-ow)/2, (h-oh)/2
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			cell := c.overlay.Get(x, y)
			c.frame.Set(ox+x, oy+y, cell.Rune, cell.Color)
		}
	}
	c.frames++
}
