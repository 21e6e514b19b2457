package wordsearch

import (
	"fmt"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// Verify checks a populated grid against its placements: every placement is
// in bounds and reads its word, and no two placements disagree on a shared
// cell. With strict set, every non-empty cell must also be covered by a
// placement, which only holds before decorative fill.
func Verify(g *Grid, placements []Placement, strict bool) error {
	owner := make(map[primitives.Position]Placement)
	for _, pl := range placements {
		for i, p := range pl.Cells() {
			if !g.InBounds(p.Row, p.Col) {
				return fmt.Errorf("placement %q leaves the grid at (%d, %d): %w", pl.Word, p.Row, p.Col, ErrOutOfBounds)
			}
			want := pl.Word[i]
			if got := g.at(p); byte(got) != want {
				return fmt.Errorf("placement %q expects %c at (%d, %d), grid has %s", pl.Word, want, p.Row, p.Col, got)
			}
			if prev, ok := owner[p]; ok {
				j := indexOf(prev, p)
				if prev.Word[j] != want {
					return fmt.Errorf("placements %q and %q disagree at (%d, %d)", prev.Word, pl.Word, p.Row, p.Col)
				}
			}
			owner[p] = pl
		}
	}
	if !strict {
		return nil
	}
	for r := range g.height {
		for c := range g.width {
			p := primitives.Position{Row: r, Col: c}
			if _, ok := owner[p]; !ok && !g.at(p).IsEmpty() {
				return fmt.Errorf("cell (%d, %d) holds %s but no placement covers it", r, c, g.at(p))
			}
		}
	}
	return nil
}

func indexOf(pl Placement, p primitives.Position) int {
	for i, c := range pl.Cells() {
		if c == p {
			return i
		}
	}
	return -1
}

// ReadAt returns the letters of the grid along cells, with '-' for empty.
func ReadAt(g *Grid, start primitives.Position, dir primitives.Direction, length int) (string, bool) {
	buf := make([]byte, 0, length)
	for _, p := range primitives.Cells(start, dir, length) {
		if !g.InBounds(p.Row, p.Col) {
			return "", false
		}
		buf = append(buf, g.at(p).String()[0])
	}
	return string(buf), true
}
