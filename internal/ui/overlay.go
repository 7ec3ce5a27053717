//go:build ebiten

package ui

import (
	"image/color"

	"wire-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridPitch is the smallest cell pitch at which lines are still drawn.
const minGridPitch = 4

// Overlay draws one-pixel lines between cells on top of the grid image.
type Overlay struct {
	size  core.Size
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a grid-line overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int, show bool, lines color.Color) *Overlay {
	o := &Overlay{size: size, scale: scale, show: show}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(lines)
	return o
}

// Update toggles the lines on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw paints the grid lines when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < minGridPitch {
		return
	}
	w := float64(o.size.W * o.scale)
	h := float64(o.size.H * o.scale)
	for col := 0; col <= o.size.W; col++ {
		o.line(screen, float64(col*o.scale), 0, 1, h)
	}
	for row := 0; row <= o.size.H; row++ {
		o.line(screen, 0, float64(row*o.scale), w, 1)
	}
}

func (o *Overlay) line(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	screen.DrawImage(o.pixel, op)
}
