package wordsearch

import (
	"math/rand/v2"
	"time"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// seedStream is mixed into the second PCG word so that a single user-facing
// seed fully determines the random source.
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns the deterministic random source used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}

type GenerateParams struct {
	Bank        []string
	Width       int
	Height      int
	MaxAttempts int
	// Seed selects the random source. Nil derives one from the clock; the
	// seed actually used is reported in Puzzle.Seed.
	Seed *uint64
	// Fill replaces empty cells with random letters after placement.
	Fill bool
	// Deduplicate places repeated bank words only once.
	Deduplicate bool
}

// Puzzle is a populated grid together with how it was produced.
type Puzzle struct {
	Grid       *Grid
	Placements []Placement
	Seed       uint64
	Filled     int
	Stats      Stats
}

// Generate validates its input, populates a new grid and optionally fills it.
// Exactly one of the puzzle and the error is non-nil.
func Generate(params GenerateParams) (*Puzzle, error) {
	grid, err := NewGrid(params.Width, params.Height)
	if err != nil {
		return nil, err
	}
	if params.MaxAttempts <= 0 {
		return nil, &Error{Kind: KindPlacement, Reason: "max attempts must be positive"}
	}

	var seed uint64
	if params.Seed != nil {
		seed = *params.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}
	rng := NewRand(seed)

	populator := CreatePopulator(rng, PopulatorParams{
		MaxAttempts: params.MaxAttempts,
		Deduplicate: params.Deduplicate,
	})
	placements, stats, err := populator.Populate(grid, params.Bank)
	if err != nil {
		return nil, err
	}

	puzzle := &Puzzle{
		Grid:       grid,
		Placements: placements,
		Seed:       seed,
		Stats:      stats,
	}
	if params.Fill {
		puzzle.Filled = FillEmpty(grid, rng, nil)
	}
	return puzzle, nil
}

// Solution renders a grid holding only the placed letters.
func (p *Puzzle) Solution() *Grid {
	g := &Grid{
		width:  p.Grid.width,
		height: p.Grid.height,
		cells:  make([]primitives.Cell, len(p.Grid.cells)),
	}
	for _, pl := range p.Placements {
		_ = Place(g, pl.Word, pl.Start, pl.Direction, true)
	}
	return g
}
