package wordsearch

import (
	"math/rand/v2"
	"strings"
	"time"

	"crosswarped.com/wordsearch/internal"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// DefaultMaxAttempts is used when PopulatorParams.MaxAttempts is zero.
const DefaultMaxAttempts = 100

type PopulatorParams struct {
	// MaxAttempts bounds the number of outer attempts, each on a fresh grid.
	MaxAttempts int
	// Deduplicate places each distinct word once. By default duplicates in
	// the bank are placed independently.
	Deduplicate bool
}

// Stats records the work done by one Populate call.
type Stats struct {
	Attempts   int           `json:"attempts"`
	Candidates int           `json:"candidates"`
	Duration   time.Duration `json:"duration"`
}

// Populator assigns every word of a bank to a legal placement on a grid.
//
// A Populator is not safe for concurrent use; it owns its random source and
// its candidate cache.
type Populator struct {
	MaxAttempts int
	Deduplicate bool

	rand *rand.Rand

	// Do not access this field directly, use the candidates method instead.
	lazyCandidates *internal.CandidateCache
}

func CreatePopulator(rand *rand.Rand, params PopulatorParams) *Populator {
	maxAttempts := params.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Populator{
		MaxAttempts: maxAttempts,
		Deduplicate: params.Deduplicate,
		rand:        rand,
	}
}

func (p *Populator) candidates(width, height, length int) []internal.Candidate {
	if p.lazyCandidates == nil {
		p.lazyCandidates = internal.NewCandidateCache()
	}
	return p.lazyCandidates.Candidates(width, height, length)
}

// attemptState is the state of one outer attempt.
type attemptState int

const (
	attemptRunning attemptState = iota
	attemptSucceeded
	attemptAbandoned
)

// Populate places every word of bank on grid and returns the placements in
// bank order. Words must already be uppercase.
//
// Invalid words fail immediately with KindInvalidWord. Otherwise up to
// MaxAttempts outer attempts are made, each starting from an empty grid; if
// all of them are abandoned a KindPlacement error is returned and the grid
// contents are unspecified.
func (p *Populator) Populate(grid *Grid, bank []string) ([]Placement, Stats, error) {
	start := time.Now()
	var stats Stats

	if p.MaxAttempts <= 0 {
		return nil, stats, &Error{Kind: KindPlacement, Reason: "max attempts must be positive"}
	}
	if err := ValidateBank(bank, grid.Width(), grid.Height()); err != nil {
		return nil, stats, err
	}

	words := bank
	if p.Deduplicate {
		words = dedupe(bank)
	}

	for stats.Attempts < p.MaxAttempts {
		stats.Attempts++
		placements, state := p.attempt(grid, words, &stats)
		if state == attemptSucceeded {
			stats.Duration = time.Since(start)
			return placements, stats, nil
		}
	}

	stats.Duration = time.Since(start)
	return nil, stats, &Error{
		Kind:        KindPlacement,
		MaxAttempts: p.MaxAttempts,
		BankSize:    len(bank),
	}
}

// attempt runs one outer attempt on a freshly emptied grid.
func (p *Populator) attempt(grid *Grid, words []string, stats *Stats) ([]Placement, attemptState) {
	grid.reset()
	placements := make([]Placement, 0, len(words))

	state := attemptRunning
	for _, word := range words {
		cands := p.candidates(grid.Width(), grid.Height(), len(word))
		p.rand.Shuffle(len(cands), func(i, j int) {
			cands[i], cands[j] = cands[j], cands[i]
		})

		placed := false
		for _, c := range cands {
			stats.Candidates++
			if !CanPlace(grid, word, c.Start, c.Direction) {
				continue
			}
			// CanPlace has just verified the placement.
			if err := Place(grid, word, c.Start, c.Direction, true); err != nil {
				continue
			}
			placements = append(placements, Placement{Word: word, Start: c.Start, Direction: c.Direction})
			placed = true
			break
		}
		if !placed {
			state = attemptAbandoned
			break
		}
	}

	if state == attemptRunning {
		state = attemptSucceeded
	}
	return placements, state
}

// ValidateBank checks that every word is non-empty, uppercase A-Z and no
// longer than min(width, height).
func ValidateBank(bank []string, width, height int) error {
	if width <= 0 || height <= 0 {
		return &Error{Kind: KindInvalidDimensions, Width: width, Height: height}
	}
	maxLen := min(width, height)
	alphabet := primitives.Alphabet()
	for _, word := range bank {
		switch {
		case word == "":
			return &Error{Kind: KindInvalidWord, Word: word, Reason: "empty"}
		case !alphabet.ContainsAll(word):
			return &Error{Kind: KindInvalidWord, Word: word, Reason: "must contain only uppercase letters A-Z"}
		case len(word) > maxLen:
			return &Error{Kind: KindInvalidWord, Word: word, Reason: "longer than min(width, height)"}
		}
	}
	return nil
}

// NormalizeWord upper-cases and trims a word so it can be placed.
func NormalizeWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

func dedupe(bank []string) []string {
	seen := make(map[string]bool, len(bank))
	out := make([]string, 0, len(bank))
	for _, w := range bank {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
