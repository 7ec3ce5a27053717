//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"wire-ca/internal/core"
	"wire-ca/internal/render"
	"wire-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the panel drawn right of the grid.
const HUDWidth = 220

type paletteProvider interface {
	Palette() []color.RGBA
}

type gridColorProvider interface {
	GridLineColor() color.RGBA
}

var binaryPalette = []color.RGBA{
	{A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// Game adapts a core simulation to the ebiten.Game interface. Simulation
// ticks are paced by a FixedStep at cfg.TPS while input is polled every frame.
type Game struct {
	sim     core.Sim
	editor  core.Editor
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep
	palette []color.RGBA
	drag    DragTracker

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	palette := binaryPalette
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	lines := color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	if p, ok := sim.(gridColorProvider); ok {
		lines = p.GridLineColor()
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size, cfg.Scale, cfg.Grid, lines),
		hud:     ui.NewHUD(sim, HUDWidth),
		timer:   core.NewFixedStep(cfg.TPS),
		palette: palette,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	if ed, ok := sim.(core.Editor); ok {
		g.editor = ed
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.editor != nil {
		g.editor.Clear()
	}

	g.handlePointer()
	g.overlay.Update()
	g.hud.Update(ui.Status{Paused: g.paused, TPS: g.timer.TPS()})

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePointer routes a primary-button stroke to ToggleCell, once per cell
// entered, and a secondary-button press to SetElectronHead.
func (g *Game) handlePointer() {
	if g.editor == nil {
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drag.Release()
	}
	x, y := ebiten.CursorPosition()
	row, col, ok := CellAt(x, y, g.scale, g.sim.Size())
	if !ok {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.drag.Press(row, col) {
			g.edit("toggle", g.editor.ToggleCell, row, col)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if g.drag.Move(row, col) {
			g.edit("toggle", g.editor.ToggleCell, row, col)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.edit("electron head", g.editor.SetElectronHead, row, col)
	}
}

func (g *Game) edit(what string, fn func(row, col int) error, row, col int) {
	if err := fn(row, col); err != nil {
		log.Printf("%s at (%d,%d): %v", what, row, col, err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
