package wireworld

import "image/color"

var gridLineColor = color.RGBA{R: 0xD8, G: 0xE3, B: 0xE7, A: 0xFF}

// palette is indexed by Cell value.
var palette = []color.RGBA{
	Empty:        {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	ElectronHead: {R: 0xFF, G: 0xA9, B: 0x00, A: 0xFF},
	ElectronTail: {R: 0xCD, G: 0x11, B: 0x3B, A: 0xFF},
	Conductor:    {R: 0x52, G: 0x00, B: 0x6A, A: 0xFF},
}

// Palette exposes the colours used for rendering, indexed by cell tag.
func (e *Engine) Palette() []color.RGBA {
	return palette
}

// ColorOf returns the display colour of c.
func ColorOf(c Cell) color.RGBA {
	if !c.Valid() {
		return palette[Empty]
	}
	return palette[c]
}

// GridLineColor returns the colour hosts draw between cells.
func (e *Engine) GridLineColor() color.RGBA { return gridLineColor }
