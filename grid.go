package wordsearch

import (
	"fmt"
	"strings"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// Grid is a fixed-size 2D grid of cells, stored row-major in one slice.
type Grid struct {
	width, height int
	cells         []primitives.Cell
}

// NewGrid returns an all-empty grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &Error{Kind: KindInvalidDimensions, Width: width, Height: height}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]primitives.Cell, width*height),
	}, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) Get(row, col int) (primitives.Cell, error) {
	if !g.InBounds(row, col) {
		return primitives.EmptyCell, g.outOfBounds(row, col)
	}
	return g.cells[row*g.width+col], nil
}

// Set writes a cell. Only empty or uppercase A-Z cells are accepted.
func (g *Grid) Set(row, col int, c primitives.Cell) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	if !c.Valid() {
		return &Error{
			Kind:   KindInvalidWord,
			Word:   string([]byte{byte(c)}),
			Row:    row,
			Col:    col,
			Reason: "cells hold only uppercase A-Z letters",
		}
	}
	g.cells[row*g.width+col] = c
	return nil
}

// at is Get for positions already known to be in bounds.
func (g *Grid) at(p primitives.Position) primitives.Cell {
	return g.cells[p.Row*g.width+p.Col]
}

func (g *Grid) reset() {
	clear(g.cells)
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// Rows returns each row as a string, empty cells as '-'.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for r := range g.height {
		var sb strings.Builder
		for c := range g.width {
			sb.WriteString(g.cells[r*g.width+c].String())
		}
		rows[r] = sb.String()
	}
	return rows
}

// Repr renders the grid row by row, columns separated by a single space,
// empty cells as '-', each row terminated by a newline.
func (g *Grid) Repr() string {
	var sb strings.Builder
	for r := range g.height {
		for c := range g.width {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.cells[r*g.width+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DebugString renders the grid on one line for log fields.
func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, rows: %q}", g.width, g.height, g.Rows())
}

func (g *Grid) outOfBounds(row, col int) error {
	return &Error{Kind: KindOutOfBounds, Row: row, Col: col, Width: g.width, Height: g.height}
}
