package term

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"wire-ca/internal/sims/wireworld"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	viewStatus = "status"
	viewField  = "field"
	viewHelp   = "help"

	leftColumnWidth = 28
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console drives an engine from a terminal. A ticker goroutine advances the
// engine while running; edits arrive from the gocui event loop. Both go
// through the engine's lock, and rendering works from a snapshot.
type Console struct {
	eng      *wireworld.Engine
	g        *gocui.Gui
	au       aurora.Aurora
	glyphs   glyphs
	keys     []keyBinding
	interval time.Duration
	seed     int64

	mu      sync.Mutex
	running bool
	last    time.Duration
	cells   []uint8
}

// NewConsole creates the terminal UI. Call Run to hand over the terminal.
func NewConsole(eng *wireworld.Engine, interval time.Duration, seed int64) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	au := aurora.NewAurora(true)
	c := &Console{
		eng:      eng,
		g:        g,
		au:       au,
		glyphs:   newGlyphs(au),
		interval: interval,
		seed:     seed,
	}
	g.Mouse = true
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{'n', "N", "Next step", c.cmdStep, ""},
		{'r', "R", "Run", c.cmdRun, ""},
		{'s', "S", "Stop", c.cmdStop, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'x', "X", "Reset", c.cmdReset, ""},
		{gocui.MouseLeft, "LMB", "Toggle conductor", c.cmdToggle, viewField},
		{gocui.MouseRight, "RMB", "Electron head", c.cmdHead, viewField},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return c, nil
}

// Run blocks in the terminal event loop until the user quits.
func (c *Console) Run() error {
	defer c.g.Close()
	done := make(chan struct{})
	defer close(done)
	go c.tickLoop(done)

	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (c *Console) tickLoop(done <-chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if c.isRunning() {
				c.tick()
			}
		}
	}
}

func (c *Console) tick() {
	start := time.Now()
	c.eng.Tick()
	c.mu.Lock()
	c.last = time.Since(start)
	c.mu.Unlock()
	c.refresh()
}

func (c *Console) isRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Console) setRunning(v bool) {
	c.mu.Lock()
	c.running = v
	c.mu.Unlock()
	c.refresh()
}

// refresh schedules a redraw on the gocui loop; safe from any goroutine.
func (c *Console) refresh() {
	c.g.Update(func(g *gocui.Gui) error {
		c.renderField(g)
		c.renderStatus(g)
		return nil
	})
}

func (c *Console) renderField(g *gocui.Gui) {
	v, err := g.View(viewField)
	if err != nil {
		return
	}
	v.Clear()
	c.cells = c.eng.Snapshot(c.cells)
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, renderField(c.cells, c.eng.Width(), c.eng.Height(), maxW, maxH, c.glyphs, c.au))
}

func (c *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View(viewStatus)
	if err != nil {
		return
	}
	c.mu.Lock()
	running, last := c.running, c.last
	c.mu.Unlock()
	mode := c.au.Blue("waiting").String()
	if running {
		mode = c.au.Cyan("running").String()
	}
	counts := c.eng.Counts()
	v.Clear()
	_, _ = fmt.Fprintln(v, c.prop("Dimension", "%v x %v", c.eng.Width(), c.eng.Height()))
	_, _ = fmt.Fprintln(v, c.prop("Workers", "%v", c.eng.Workers()))
	_, _ = fmt.Fprintln(v, c.prop("Interval", "%v", c.interval))
	_, _ = fmt.Fprintln(v, c.prop("Mode", "%v", mode))
	_, _ = fmt.Fprintln(v, c.prop("Generation", "%v", c.eng.Generation()))
	_, _ = fmt.Fprintln(v, c.prop("Heads", "%v", counts.Heads))
	_, _ = fmt.Fprintln(v, c.prop("Tails", "%v", counts.Tails))
	_, _ = fmt.Fprintln(v, c.prop("Conductors", "%v", counts.Conductors))
	_, _ = fmt.Fprintln(v, c.prop("Tick time", "%v", last.Round(time.Microsecond)))
}

func (c *Console) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+c.au.Green(name).String()+": "+format, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(viewStatus, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		c.renderStatus(g)
	}

	if v, err := g.SetView(viewField, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Wireworld"
	}
	c.renderField(g)

	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		for i, k := range c.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.tick()
	return nil
}

func (c *Console) cmdRun(_ *gocui.View) error {
	c.setRunning(true)
	return nil
}

func (c *Console) cmdStop(_ *gocui.View) error {
	c.setRunning(false)
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.eng.Clear()
	c.refresh()
	return nil
}

func (c *Console) cmdReset(_ *gocui.View) error {
	c.eng.Reset(c.seed)
	c.refresh()
	return nil
}

func (c *Console) cmdToggle(v *gocui.View) error {
	return c.editAtCursor(v, c.eng.ToggleCell)
}

func (c *Console) cmdHead(v *gocui.View) error {
	return c.editAtCursor(v, c.eng.SetElectronHead)
}

// editAtCursor applies fn to the cell under the clicked position. Clicks on
// the crop notice or past the grid edge are ignored.
func (c *Console) editAtCursor(v *gocui.View, fn func(row, col int) error) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	row, col := cy+oy, cx+ox
	if row >= c.eng.Height() || col >= c.eng.Width() {
		return nil
	}
	maxW, maxH := v.Size()
	if cropped := c.eng.Width() > maxW || c.eng.Height() > maxH; cropped && row == maxH-1 {
		return nil
	}
	_ = fn(row, col)
	c.refresh()
	return nil
}
