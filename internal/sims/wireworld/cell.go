package wireworld

import (
	"errors"
	"fmt"
)

// ErrInvalidCell is returned when a byte outside the four Wireworld states is
// offered as a cell value.
var ErrInvalidCell = errors.New("invalid cell state")

// Cell is the state tag stored for every grid position. The numeric values
// are part of the rendering contract: hosts index their palettes with them.
type Cell uint8

const (
	Empty Cell = iota
	ElectronHead
	ElectronTail
	Conductor
)

// NumStates is the number of valid cell states.
const NumStates = 4

// Valid reports whether c is one of the four Wireworld states.
func (c Cell) Valid() bool { return c < NumStates }

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case ElectronHead:
		return "head"
	case ElectronTail:
		return "tail"
	case Conductor:
		return "conductor"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Next returns the state c moves to given the number of electron heads among
// its Moore neighbours.
func (c Cell) Next(heads int) Cell {
	switch c {
	case ElectronHead:
		return ElectronTail
	case ElectronTail:
		return Conductor
	case Conductor:
		if heads == 1 || heads == 2 {
			return ElectronHead
		}
		return Conductor
	default:
		return Empty
	}
}

func checkCell(c Cell) error {
	if c.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidCell, uint8(c))
}
