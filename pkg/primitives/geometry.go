package primitives

import "iter"

// Position is a (row, column) grid coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns p moved by n steps along d.
func (p Position) Add(d Direction, n int) Position {
	dr, dc := d.Step()
	return Position{Row: p.Row + n*dr, Col: p.Col + n*dc}
}

// Cells returns the ordered positions a word of the given length occupies
// when laid out from start along dir. It does not check bounds.
func Cells(start Position, dir Direction, length int) []Position {
	if length <= 0 {
		return nil
	}
	cells := make([]Position, length)
	for i := range length {
		cells[i] = start.Add(dir, i)
	}
	return cells
}

// StartingPositions yields, row-major, every start from which a word of the
// given length stays inside a width x height grid along dir.
func StartingPositions(width, height int, dir Direction, length int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		rowLo, rowHi, ok := startRange(height, rowStep(dir), length)
		if !ok {
			return
		}
		colLo, colHi, ok := startRange(width, colStep(dir), length)
		if !ok {
			return
		}
		for r := rowLo; r <= rowHi; r++ {
			for c := colLo; c <= colHi; c++ {
				if !yield(Position{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// startRange returns the inclusive range of start coordinates along one axis
// of the given size for a word moving by step per letter.
func startRange(size, step, length int) (lo, hi int, ok bool) {
	if length <= 0 || size <= 0 {
		return 0, 0, false
	}
	span := length - 1
	switch {
	case step > 0:
		lo, hi = 0, size-1-span
	case step < 0:
		lo, hi = span, size-1
	default:
		lo, hi = 0, size-1
	}
	return lo, hi, lo <= hi
}

func rowStep(d Direction) int {
	dr, _ := d.Step()
	return dr
}

func colStep(d Direction) int {
	_, dc := d.Step()
	return dc
}
