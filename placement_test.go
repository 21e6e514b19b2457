package wordsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/wordsearch/pkg/primitives"
)

func pos(r, c int) primitives.Position {
	return primitives.Position{Row: r, Col: c}
}

func TestCanPlace(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	require.NoError(t, Place(g, "CAT", pos(0, 0), primitives.DirectionRight, false))

	tests := []struct {
		name  string
		word  string
		start primitives.Position
		dir   primitives.Direction
		want  bool
	}{
		{"empty cells", "DOG", pos(1, 0), primitives.DirectionRight, true},
		{"crossing on same letter", "ARK", pos(0, 1), primitives.DirectionDown, true},
		{"crossing on different letter", "OAK", pos(0, 0), primitives.DirectionDown, false},
		{"overlapping identical word", "CAT", pos(0, 0), primitives.DirectionRight, true},
		{"runs off the right edge", "DOG", pos(1, 2), primitives.DirectionRight, false},
		{"runs off the top", "DOG", pos(1, 0), primitives.DirectionUp, false},
		{"start outside", "A", pos(4, 0), primitives.DirectionDown, false},
		{"diagonal off the edge", "TOP", pos(0, 2), primitives.DirectionDownRight, false},
		{"diagonal ending on T", "SIT", pos(2, 0), primitives.DirectionUpRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlace(g, tt.word, tt.start, tt.dir))
		})
	}
}

func TestPlace_RejectsWithoutWriting(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, Place(g, "CAT", pos(1, 0), primitives.DirectionRight, false))
	before := g.Repr()

	err = Place(g, "DOG", pos(0, 1), primitives.DirectionDown, false)
	assert.ErrorIs(t, err, ErrPlacement)
	assert.Equal(t, before, g.Repr())

	err = Place(g, "DOGS", pos(0, 0), primitives.DirectionRight, false)
	assert.ErrorIs(t, err, ErrPlacement)
	assert.Contains(t, err.Error(), "leaves the grid")
	assert.Equal(t, before, g.Repr())
}

func TestPlace_InvalidDirection(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	for _, dir := range []primitives.Direction{-1, 8} {
		assert.False(t, CanPlace(g, "A", pos(0, 0), dir), "%s", dir)
		for _, force := range []bool{false, true} {
			err := Place(g, "AB", pos(1, 1), dir, force)
			assert.ErrorIs(t, err, ErrPlacement, "%s force=%v", dir, force)
			assert.ErrorContains(t, err, "invalid direction")
		}
	}
	assert.Equal(t, 9, g.EmptyCount())
}

func TestPlace_Force(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, Place(g, "CAT", pos(2, 2), primitives.DirectionLeft, true))
	assert.Equal(t, "- - -\n- - -\nT A C\n", g.Repr())
}

func TestPlacement_Reversed(t *testing.T) {
	pl := Placement{Word: "CAT", Start: pos(0, 0), Direction: primitives.DirectionDownRight}
	rev := pl.Reversed()
	assert.Equal(t, "TAC", rev.Word)
	assert.Equal(t, pos(2, 2), rev.Start)
	assert.Equal(t, primitives.DirectionUpLeft, rev.Direction)
	assert.Equal(t, pl, rev.Reversed())
}

// A legal placement stays legal when read backwards from its far end.
func TestCanPlace_DirectionClosure(t *testing.T) {
	rng := NewRand(7)
	words := []string{"SEA", "TEA", "ATE", "EAST", "SAT", "TASTE"}

	for trial := range 50 {
		g, err := NewGrid(6, 5)
		require.NoError(t, err)

		// Scatter a few letters so some placements cross.
		FillEmpty(g, rng, lettersOf("AEST"))
		for i := range g.cells {
			if rng.IntN(3) != 0 {
				g.cells[i] = primitives.EmptyCell
			}
		}

		for _, w := range words {
			for _, dir := range primitives.AllDirections {
				for start := range primitives.StartingPositions(g.Width(), g.Height(), dir, len(w)) {
					pl := Placement{Word: w, Start: start, Direction: dir}
					if !CanPlace(g, pl.Word, pl.Start, pl.Direction) {
						continue
					}
					rev := pl.Reversed()
					assert.True(t, CanPlace(g, rev.Word, rev.Start, rev.Direction),
						"trial %d: %+v legal but reverse %+v is not", trial, pl, rev)
				}
			}
		}
	}
}

func lettersOf(s string) *primitives.CharSet {
	cs := primitives.DefaultCharSet()
	for _, r := range s {
		_ = cs.Add(r)
	}
	return cs
}
