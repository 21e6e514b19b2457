package wordsearch

import (
	"crosswarped.com/wordsearch/pkg/primitives"
)

// Placement is a word laid out from Start along Direction.
type Placement struct {
	Word      string               `json:"word"`
	Start     primitives.Position  `json:"start"`
	Direction primitives.Direction `json:"direction"`
}

// Cells returns the positions the placement occupies.
func (p Placement) Cells() []primitives.Position {
	return primitives.Cells(p.Start, p.Direction, len(p.Word))
}

// End returns the position of the placement's last letter.
func (p Placement) End() primitives.Position {
	return p.Start.Add(p.Direction, len(p.Word)-1)
}

// Reversed returns the placement that reads the reverse word from the other end.
func (p Placement) Reversed() Placement {
	runes := []byte(p.Word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return Placement{Word: string(runes), Start: p.End(), Direction: p.Direction.Reverse()}
}

// CanPlace reports whether word fits from start along dir: every induced cell
// is in bounds and is either empty or already holds the required letter.
func CanPlace(g *Grid, word string, start primitives.Position, dir primitives.Direction) bool {
	return conflictAt(g, word, start, dir) < 0
}

// conflictAt returns the index of the first letter of word that cannot be
// written, or -1 when the whole placement is legal.
func conflictAt(g *Grid, word string, start primitives.Position, dir primitives.Direction) int {
	if len(word) == 0 || !dir.Valid() {
		return 0
	}
	end := start.Add(dir, len(word)-1)
	if !g.InBounds(start.Row, start.Col) {
		return 0
	}
	if !g.InBounds(end.Row, end.Col) {
		// The path is a straight line, so only the far end can leave the grid.
		return len(word) - 1
	}
	for i := range len(word) {
		c := g.at(start.Add(dir, i))
		if !c.IsEmpty() && byte(c) != word[i] {
			return i
		}
	}
	return -1
}

// Place writes word's letters from start along dir. Unless force is set, the
// placement is verified first and a KindPlacement error is returned without
// touching the grid if it is illegal. With force the caller guarantees
// legality.
func Place(g *Grid, word string, start primitives.Position, dir primitives.Direction, force bool) error {
	if !dir.Valid() {
		return &Error{
			Kind:   KindPlacement,
			Word:   word,
			Row:    start.Row,
			Col:    start.Col,
			Reason: "invalid direction " + dir.String(),
		}
	}
	if !force {
		if i := conflictAt(g, word, start, dir); i >= 0 {
			at := start.Add(dir, i)
			return &Error{
				Kind:   KindPlacement,
				Word:   word,
				Row:    at.Row,
				Col:    at.Col,
				Reason: placementReason(g, at),
			}
		}
	}
	for i := range len(word) {
		p := start.Add(dir, i)
		g.cells[p.Row*g.width+p.Col] = primitives.Cell(word[i])
	}
	return nil
}

func placementReason(g *Grid, at primitives.Position) string {
	if !g.InBounds(at.Row, at.Col) {
		return "leaves the grid"
	}
	return "conflicts with " + g.at(at).String()
}
