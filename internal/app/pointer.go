package app

import "wire-ca/internal/core"

// CellAt maps a pixel position to the grid cell under it, given the cell
// pitch. ok is false when the position lies outside the grid.
func CellAt(x, y, pitch int, size core.Size) (row, col int, ok bool) {
	if pitch <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/pitch, x/pitch
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// DragTracker turns a held pointer button into one edit per newly entered
// cell, so a stroke toggles each cell it crosses exactly once.
type DragTracker struct {
	active   bool
	row, col int
}

// Press starts a stroke on (row, col). It always reports an edit.
func (d *DragTracker) Press(row, col int) bool {
	d.active = true
	d.row, d.col = row, col
	return true
}

// Move reports whether the pointer entered a different cell during a stroke.
func (d *DragTracker) Move(row, col int) bool {
	if !d.active || (row == d.row && col == d.col) {
		return false
	}
	d.row, d.col = row, col
	return true
}

// Release ends the stroke.
func (d *DragTracker) Release() { d.active = false }

// Active reports whether a stroke is in progress.
func (d *DragTracker) Active() bool { return d.active }
