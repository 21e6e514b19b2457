package wordsearch

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/wordsearch/pkg/primitives"
)

func loadWords(t testing.TB) []string {
	file, err := os.Open("testdata/words.txt")
	if err != nil {
		t.Fatalf("failed to open words file: %v", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, NormalizeWord(line))
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan words file: %v", err)
	}
	return words
}

func seedPtr(s uint64) *uint64 {
	return &s
}

func TestGenerate_SingleRow(t *testing.T) {
	seen := make(map[string]bool)
	for seed := range uint64(64) {
		p, err := Generate(GenerateParams{
			Bank:        []string{"CAT"},
			Width:       3,
			Height:      1,
			MaxAttempts: 10,
			Seed:        seedPtr(seed),
		})
		require.NoError(t, err)
		seen[p.Grid.Repr()] = true
	}
	// CAT can only be laid out forwards or backwards along the row.
	assert.True(t, seen["C A T\n"])
	for repr := range seen {
		assert.Contains(t, []string{"C A T\n", "T A C\n"}, repr)
	}
}

func TestGenerate_TwoWordsNoContradiction(t *testing.T) {
	bank := []string{"CAT", "DOG"}
	p, err := Generate(GenerateParams{Bank: bank, Width: 3, Height: 3, MaxAttempts: 100, Seed: seedPtr(2)})
	require.NoError(t, err)
	assertPopulated(t, p.Grid, bank, p.Placements)
	assert.Equal(t, 3, p.Grid.EmptyCount())
}

func TestGenerate_CrossingLayoutExists(t *testing.T) {
	bank := []string{"HI", "IT"}
	p, err := Generate(GenerateParams{Bank: bank, Width: 2, Height: 2, MaxAttempts: 10, Seed: seedPtr(3)})
	require.NoError(t, err)
	assertPopulated(t, p.Grid, bank, p.Placements)

	// The crossing layout is legal on its own.
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, Place(g, "HI", pos(0, 0), primitives.DirectionRight, false))
	require.NoError(t, Place(g, "IT", pos(0, 1), primitives.DirectionDown, false))
	assert.Equal(t, "H I\n- T\n", g.Repr())
}

func TestGenerate_RepeatedLetterWord(t *testing.T) {
	p, err := Generate(GenerateParams{Bank: []string{"AAAA"}, Width: 4, Height: 4, MaxAttempts: 10, Seed: seedPtr(4)})
	require.NoError(t, err)

	assert.Equal(t, 12, p.Grid.EmptyCount())
	assert.Equal(t, 4, strings.Count(p.Grid.Repr(), "A"))
	require.Len(t, p.Placements, 1)
	got, ok := ReadAt(p.Grid, p.Placements[0].Start, p.Placements[0].Direction, 4)
	assert.True(t, ok)
	assert.Equal(t, "AAAA", got)
}

func TestGenerate_RejectsInvalidWords(t *testing.T) {
	for _, word := range []string{"WORD", "IMPOSSIBLE"} {
		for seed := range uint64(3) {
			_, err := Generate(GenerateParams{Bank: []string{word}, Width: 3, Height: 3, MaxAttempts: 100, Seed: seedPtr(seed)})
			assert.ErrorIs(t, err, ErrInvalidWord, word)
			assert.NotErrorIs(t, err, ErrPlacement, word)
		}
	}
}

func TestGenerate_InvalidParams(t *testing.T) {
	_, err := Generate(GenerateParams{Bank: []string{"A"}, Width: 0, Height: 3, MaxAttempts: 1})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Generate(GenerateParams{Bank: []string{"A"}, Width: 3, Height: 3})
	assert.Error(t, err)
}

func TestGenerate_Deterministic(t *testing.T) {
	words := loadWords(t)
	params := GenerateParams{Bank: words, Width: 12, Height: 12, MaxAttempts: 50, Seed: seedPtr(42), Fill: true}

	first, err := Generate(params)
	require.NoError(t, err)
	second, err := Generate(params)
	require.NoError(t, err)

	assert.Equal(t, first.Grid.Repr(), second.Grid.Repr())
	assert.Equal(t, first.Placements, second.Placements)
	assert.Equal(t, uint64(42), first.Seed)
}

func TestGenerate_ReportsSeed(t *testing.T) {
	p, err := Generate(GenerateParams{Bank: []string{"SEED"}, Width: 5, Height: 5, MaxAttempts: 5})
	require.NoError(t, err)

	again, err := Generate(GenerateParams{Bank: []string{"SEED"}, Width: 5, Height: 5, MaxAttempts: 5, Seed: seedPtr(p.Seed)})
	require.NoError(t, err)
	assert.Equal(t, p.Grid.Repr(), again.Grid.Repr())
}

func TestGenerate_Fill(t *testing.T) {
	words := loadWords(t)
	p, err := Generate(GenerateParams{Bank: words, Width: 12, Height: 12, MaxAttempts: 50, Seed: seedPtr(8), Fill: true})
	require.NoError(t, err)

	assert.Zero(t, p.Grid.EmptyCount())
	assert.Equal(t, p.Solution().EmptyCount(), p.Filled)
	assert.NoError(t, Verify(p.Grid, p.Placements, false))
	assert.NoError(t, Verify(p.Solution(), p.Placements, true))
}

// A layout found for a small grid can be translated into any larger one.
func TestGenerate_LargerGridAcceptsSmallerSolution(t *testing.T) {
	bank := []string{"CAT", "DOG", "TOAD"}
	small, err := Generate(GenerateParams{Bank: bank, Width: 4, Height: 4, MaxAttempts: 200, Seed: seedPtr(6)})
	require.NoError(t, err)

	for _, offset := range [][2]int{{0, 0}, {2, 3}, {5, 1}} {
		large, err := NewGrid(10, 9)
		require.NoError(t, err)
		var moved []Placement
		for _, pl := range small.Placements {
			pl.Start.Row += offset[0]
			pl.Start.Col += offset[1]
			require.NoError(t, Place(large, pl.Word, pl.Start, pl.Direction, false))
			moved = append(moved, pl)
		}
		assert.NoError(t, Verify(large, moved, true))
	}
}

func BenchmarkGenerate(b *testing.B) {
	words := loadWords(b)
	b.ReportAllocs()

	for _, tc := range []struct {
		name string
		side int
	}{
		{name: "12x12", side: 12},
		{name: "20x20", side: 20},
	} {
		b.Run(tc.name, func(b *testing.B) {
			var bank []string
			for _, w := range words {
				if len(w) <= tc.side {
					bank = append(bank, w)
				}
			}
			seed := uint64(0)
			for b.Loop() {
				seed++
				p, err := Generate(GenerateParams{Bank: bank, Width: tc.side, Height: tc.side, MaxAttempts: 100, Seed: &seed})
				if err != nil {
					b.Fatal(err)
				}
				b.ReportMetric(float64(p.Stats.Attempts), "attempts")
			}
		})
	}
}
