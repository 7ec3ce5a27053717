package wireworld

import (
	"fmt"
	"sync"

	"wire-ca/internal/core"
)

// Errors shared with the grid storage layer, re-exported for callers that
// only import this package.
var (
	ErrInvalidDimensions = core.ErrInvalidDimensions
	ErrOutOfRange        = core.ErrOutOfRange
)

// Placement assigns a state to one grid position.
type Placement struct {
	Row, Col int
	Cell     Cell
}

// Counts tallies the cells of a generation by state.
type Counts struct {
	Empty      int
	Heads      int
	Tails      int
	Conductors int
}

// Engine runs Wireworld on a fixed-size grid. It keeps the current generation
// in cur and computes the next one into nxt, swapping the two after every
// full pass. All mutators share one lock, so edits never interleave with a
// tick's scan.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	w, h  int
	cur   *core.ByteGrid
	nxt   *core.ByteGrid
	bands []band

	generation uint64
}

// New returns an engine with an all-empty width*height grid and a serial scan.
func New(width, height int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Pattern = PatternEmpty
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options. The
// grid starts empty; Reset places the configured pattern.
func NewWithConfig(cfg Config) (*Engine, error) {
	cur, err := core.NewByteGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewByteGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	switch cfg.Pattern {
	case "", PatternEmpty, PatternRandom:
	default:
		if _, err := LookupPattern(cfg.Pattern); err != nil {
			return nil, err
		}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Engine{
		cfg:   cfg,
		w:     cfg.Width,
		h:     cfg.Height,
		cur:   cur,
		nxt:   nxt,
		bands: splitRows(cfg.Height, cfg.Workers),
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "wireworld" }

// Width returns the number of columns.
func (e *Engine) Width() int { return e.w }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.h }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Config returns the configuration the engine runs with.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Cells exposes the current generation, one tag per cell in row-major order.
// The slice aliases engine storage: it must not be written to, and it is only
// valid until the next Tick or edit, after which the buffers may have swapped.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Snapshot copies the current generation into dst, growing it if needed, and
// returns the filled slice. Use it instead of Cells when ticks or edits run on
// other goroutines.
func (e *Engine) Snapshot(dst []uint8) []uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := e.w * e.h
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	copy(dst, e.cur.Cells())
	return dst
}

// Cell returns the state at (row, col).
func (e *Engine) Cell(row, col int) (Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, err := e.cur.Get(row, col)
	return Cell(v), err
}

// Generation reports how many ticks have completed since construction or the
// last Reset/Clear.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Counts tallies the current generation by state.
func (e *Engine) Counts() Counts {
	e.mu.Lock()
	defer e.mu.Unlock()
	var c Counts
	for _, v := range e.cur.Cells() {
		switch Cell(v) {
		case ElectronHead:
			c.Heads++
		case ElectronTail:
			c.Tails++
		case Conductor:
			c.Conductors++
		default:
			c.Empty++
		}
	}
	return c
}

// Workers reports how many goroutines share a tick's scan.
func (e *Engine) Workers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.bands)
}

// SetWorkers changes the requested scan parallelism. The effective number of
// bands may be lower for short grids.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Workers = n
	e.bands = splitRows(e.h, n)
}

// Tick advances the simulation by one generation. The whole next generation
// is computed from the current one before it is published.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scan()
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// Step advances the simulation by one tick.
func (e *Engine) Step() { e.Tick() }

// ToggleCell flips (row, col) between Empty and Conductor. Electron heads and
// tails are left alone so a drag across a live wire does not erase signals.
func (e *Engine) ToggleCell(row, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.cur.Check(row, col); err != nil {
		return err
	}
	cells := e.cur.Cells()
	idx := e.cur.Index(row, col)
	switch Cell(cells[idx]) {
	case Empty:
		cells[idx] = uint8(Conductor)
	case Conductor:
		cells[idx] = uint8(Empty)
	}
	return nil
}

// SetElectronHead puts an electron head at (row, col) whatever was there.
func (e *Engine) SetElectronHead(row, col int) error {
	return e.SetCell(row, col, ElectronHead)
}

// SetCell stores state c at (row, col).
func (e *Engine) SetCell(row, col int, c Cell) error {
	if err := checkCell(c); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.Set(row, col, uint8(c))
}

// SetCells applies every placement, or none of them if any is invalid.
func (e *Engine) SetCells(ps []Placement) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range ps {
		if err := e.cur.Check(p.Row, p.Col); err != nil {
			return err
		}
		if err := checkCell(p.Cell); err != nil {
			return fmt.Errorf("placement (%d,%d): %w", p.Row, p.Col, err)
		}
	}
	cells := e.cur.Cells()
	for _, p := range ps {
		cells[e.cur.Index(p.Row, p.Col)] = uint8(p.Cell)
	}
	return nil
}

// Stamp copies every cell of p onto the grid with its top-left corner at
// (row, col), replacing what was there. Patterns crossing the edge are
// rejected without touching the grid.
func (e *Engine) Stamp(p Pattern, row, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stamp(p, row, col)
}

func (e *Engine) stamp(p Pattern, row, col int) error {
	if row < 0 || col < 0 || row+p.H > e.h || col+p.W > e.w {
		return fmt.Errorf("%w: %q (%dx%d) at (%d,%d) on %dx%d grid",
			ErrPatternDoesNotFit, p.Name, p.W, p.H, row, col, e.w, e.h)
	}
	cells := e.cur.Cells()
	for r := 0; r < p.H; r++ {
		base := e.cur.Index(row+r, col)
		for c := 0; c < p.W; c++ {
			cells[base+c] = uint8(p.At(r, c))
		}
	}
	return nil
}

// Clear empties the grid and restarts the generation count.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur.Clear()
	e.nxt.Clear()
	e.generation = 0
}

// Reset clears the grid and places the configured pattern at its centre. A
// zero seed falls back to the configured one. Patterns larger than the grid
// leave it empty.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur.Clear()
	e.nxt.Clear()
	e.generation = 0

	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	var p Pattern
	switch e.cfg.Pattern {
	case "", PatternEmpty:
		return
	case PatternRandom:
		p = randomPattern(e.w, e.h, effective)
	default:
		var err error
		if p, err = LookupPattern(e.cfg.Pattern); err != nil {
			return
		}
	}
	_ = e.stamp(p, (e.h-p.H)/2, (e.w-p.W)/2)
}

func init() {
	core.Register("wireworld", func(cfg map[string]string) (core.Sim, error) {
		e, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
