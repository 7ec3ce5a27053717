package wireworld

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"wire-ca/internal/core"
)

// Built-in pattern names accepted by Config.Pattern and LookupPattern.
const (
	PatternEmpty  = "empty"
	PatternWire   = "wire"
	PatternClock  = "clock"
	PatternDiode  = "diode"
	PatternRandom = "random"
)

var (
	// ErrUnknownPattern is returned for pattern names with no built-in layout.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrPatternDoesNotFit is returned when a stamp would cross the grid edge.
	ErrPatternDoesNotFit = errors.New("pattern does not fit grid")
)

// Layout characters understood by ParseLayout.
const (
	glyphEmpty     = '.'
	glyphHead      = 'H'
	glyphTail      = 't'
	glyphConductor = '#'
)

// Pattern is a rectangular block of cells that can be stamped onto a grid.
type Pattern struct {
	Name  string
	W, H  int
	Cells []Cell
}

// At returns the cell at (row, col) of the pattern.
func (p Pattern) At(row, col int) Cell { return p.Cells[row*p.W+col] }

// String renders the pattern back into layout text.
func (p Pattern) String() string {
	var b strings.Builder
	for r := 0; r < p.H; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < p.W; c++ {
			b.WriteByte(glyphFor(p.At(r, c)))
		}
	}
	return b.String()
}

var builtinLayouts = map[string]string{
	PatternWire: `
tH##############`,
	// A ten-tick loop feeding an output wire on its right side.
	PatternClock: `
.tH##.......
#....#######
.####.......`,
	// Passes signals left to right and absorbs those arriving from the right.
	PatternDiode: `
.....##......
tH####.######
.....##......`,
}

// PatternNames lists every name LookupPattern accepts, sorted.
func PatternNames() []string {
	names := []string{PatternEmpty, PatternRandom}
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the built-in layout registered under name. The
// generated patterns (empty, random) depend on grid size and are produced by
// Reset instead.
func LookupPattern(name string) (Pattern, error) {
	layout, ok := builtinLayouts[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return ParseLayout(name, layout)
}

// ParseLayout builds a pattern from rows of layout text: '.' or ' ' for
// empty, '#' conductor, 'H' electron head, 't' electron tail. Blank leading
// and trailing lines are ignored; short rows are padded with empty cells.
func ParseLayout(name, layout string) (Pattern, error) {
	lines := strings.Split(strings.ReplaceAll(layout, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	if width == 0 {
		return Pattern{}, fmt.Errorf("pattern %q: %w: empty layout", name, core.ErrInvalidDimensions)
	}

	p := Pattern{Name: name, W: width, H: len(lines), Cells: make([]Cell, width*len(lines))}
	for r, l := range lines {
		for c := 0; c < len(l); c++ {
			cell, ok := cellForGlyph(l[c])
			if !ok {
				return Pattern{}, fmt.Errorf("pattern %q row %d col %d: %w: %q", name, r, c, ErrInvalidCell, l[c])
			}
			p.Cells[r*width+c] = cell
		}
	}
	return p, nil
}

func cellForGlyph(ch byte) (Cell, bool) {
	switch ch {
	case glyphEmpty, ' ':
		return Empty, true
	case glyphHead:
		return ElectronHead, true
	case glyphTail:
		return ElectronTail, true
	case glyphConductor:
		return Conductor, true
	default:
		return Empty, false
	}
}

func glyphFor(c Cell) byte {
	switch c {
	case ElectronHead:
		return glyphHead
	case ElectronTail:
		return glyphTail
	case Conductor:
		return glyphConductor
	default:
		return glyphEmpty
	}
}

// randomPattern scatters conductors over a w*h block and lights a few of them.
func randomPattern(w, h int, seed int64) Pattern {
	rng := core.NewRNG(seed)
	p := Pattern{Name: PatternRandom, W: w, H: h, Cells: make([]Cell, w*h)}
	for i := range p.Cells {
		if !rng.Chance(0.35) {
			continue
		}
		p.Cells[i] = Conductor
		if rng.Chance(0.05) {
			p.Cells[i] = ElectronHead
		}
	}
	return p
}
