//go:build ebiten

package ui

import (
	"image/color"

	"wire-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []string

	controls []core.ParameterControl
	selected int
	setter   core.IntParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim.Name())}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the panel text from the simulation and applies control
// adjustments.
func (h *HUD) Update(st Status) {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.handleInput(snap)
	if len(h.controls) > 0 {
		st.Selected = h.controls[h.selected].Key
	}
	h.lines = append(hudLines(h.title, snap, st), helpLines...)
}

func (h *HUD) handleInput(snap core.ParameterSnapshot) {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		delta++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		delta--
	}
	if delta == 0 {
		return
	}
	ctrl := h.controls[h.selected]
	if v, ok := adjustedValue(snap, ctrl, delta); ok {
		h.setter.SetIntParameter(ctrl.Key, v)
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := lineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, 8, y, color.White)
		y += lineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
