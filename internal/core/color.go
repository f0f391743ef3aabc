package core

// PaletteSize is the number of entries in an indexed color palette.
const PaletteSize = 256

// Palette is an indexed RGB palette, three bytes per entry.
type Palette [PaletteSize * 3]byte

// Set copies count entries of data (RGB triplets) starting at entry start.
// Entries that would fall outside the palette are dropped.
func (p *Palette) Set(data []byte, start, count int) {
	if start < 0 || count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		dst := (start + i) * 3
		src := i * 3
		if dst+3 > len(p) || src+3 > len(data) {
			return
		}
		copy(p[dst:dst+3], data[src:src+3])
	}
}

// RGB returns the color of entry i.
func (p *Palette) RGB(i uint8) (r, g, b uint8) {
	o := int(i) * 3
	return p[o], p[o+1], p[o+2]
}

// Color is a palette index for a screen cell.
type Color = uint8

// Well-known palette entries used by the built-in palettes.
const (
	ColorDefault Color = 0
	ColorDim     Color = 1
	ColorText    Color = 2
	ColorAccent  Color = 3
	ColorWarn    Color = 4
	ColorOK      Color = 5
)
