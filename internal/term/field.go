package term

import (
	"bytes"

	"wire-ca/internal/sims/wireworld"

	"github.com/logrusorgru/aurora"
)

const cropNotice = "The grid is larger than the viewing area"

// glyphs holds the rendered text of each cell state, indexed by tag.
type glyphs [wireworld.NumStates]string

func newGlyphs(au aurora.Aurora) glyphs {
	return glyphs{
		wireworld.Empty:        "·",
		wireworld.ElectronHead: au.Yellow("█").String(),
		wireworld.ElectronTail: au.Red("█").String(),
		wireworld.Conductor:    au.Magenta("█").String(),
	}
}

// renderField draws a w*h grid of cell tags as one glyph per cell, cropped to
// maxW*maxH. When cropped, the last visible line carries a notice instead.
func renderField(cells []uint8, w, h, maxW, maxH int, g glyphs, au aurora.Aurora) string {
	var b bytes.Buffer
	crop := w > maxW || h > maxH
	for row := 0; row < h && row < maxH; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == maxH-1 {
			b.WriteString(au.Red(cropNotice).BgBlack().String())
			break
		}
		for col := 0; col < w && col < maxW; col++ {
			tag := cells[row*w+col]
			if int(tag) >= len(g) {
				tag = uint8(wireworld.Empty)
			}
			b.WriteString(g[tag])
		}
	}
	return b.String()
}
