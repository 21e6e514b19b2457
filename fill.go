package wordsearch

import (
	"math/rand/v2"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// FillEmpty replaces every empty cell, row-major, with a letter drawn
// uniformly from alphabet (A-Z when nil). It returns the number of cells
// filled.
func FillEmpty(g *Grid, rand *rand.Rand, alphabet *primitives.CharSet) int {
	if alphabet == nil {
		alphabet = primitives.Alphabet()
	}
	letters := alphabet.Letters()
	if len(letters) == 0 {
		return 0
	}

	filled := 0
	for i, c := range g.cells {
		if !c.IsEmpty() {
			continue
		}
		g.cells[i] = primitives.Cell(letters[rand.IntN(len(letters))])
		filled++
	}
	return filled
}
