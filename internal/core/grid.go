package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfRange is returned for coordinates outside the grid.
	ErrOutOfRange = errors.New("coordinates out of range")
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col). It does not check bounds.
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *ByteGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Check returns an ErrOutOfRange error when (row, col) is outside the grid.
func (g *ByteGrid) Check(row, col int) error {
	if g.InBounds(row, col) {
		return nil
	}
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, g.W, g.H)
}

// Get returns the value stored at (row, col).
func (g *ByteGrid) Get(row, col int) (uint8, error) {
	if err := g.Check(row, col); err != nil {
		return 0, err
	}
	return g.data[g.Index(row, col)], nil
}

// Set stores v at (row, col).
func (g *ByteGrid) Set(row, col int, v uint8) error {
	if err := g.Check(row, col); err != nil {
		return err
	}
	g.data[g.Index(row, col)] = v
	return nil
}

// CopyFrom overwrites the grid contents with src. Both grids must share
// dimensions; mismatched sources are rejected without modifying g.
func (g *ByteGrid) CopyFrom(src *ByteGrid) error {
	if src == nil || src.W != g.W || src.H != g.H {
		return fmt.Errorf("%w: cannot copy into %dx%d grid", ErrInvalidDimensions, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
