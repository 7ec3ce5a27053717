package render

import "image/color"

// fillPaletteRGBA converts cell tags into RGBA pixels using a palette indexed
// by tag. Tags past the end of the palette use entry 0; an empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	for i, c := range cells {
		col := palette[0]
		if int(c) < len(palette) {
			col = palette[c]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
