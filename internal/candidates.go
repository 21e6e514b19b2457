package internal

import (
	"crosswarped.com/wordsearch/pkg/primitives"
)

// Candidate is a (start, direction) pair a word could be laid out from.
type Candidate struct {
	Start     primitives.Position
	Direction primitives.Direction
}

type candidateKey struct {
	width, height, length int
}

// CandidateCache memoizes candidate lists by (width, height, length).
//
// It belongs to a single populator; grids of different sizes may share one
// cache because the dimensions are part of the key.
type CandidateCache struct {
	memoized map[candidateKey][]Candidate
}

func NewCandidateCache() *CandidateCache {
	return &CandidateCache{memoized: make(map[candidateKey][]Candidate)}
}

// Candidates returns every in-bounds (start, direction) for a word of the
// given length, over all eight directions. The returned slice is a fresh copy
// that the caller may reorder.
func (c *CandidateCache) Candidates(width, height, length int) []Candidate {
	key := candidateKey{width: width, height: height, length: length}
	memo, ok := c.memoized[key]
	if !ok {
		memo = allCandidates(width, height, length)
		c.memoized[key] = memo
	}
	out := make([]Candidate, len(memo))
	copy(out, memo)
	return out
}

// Len returns the number of memoized keys.
func (c *CandidateCache) Len() int {
	return len(c.memoized)
}

func allCandidates(width, height, length int) []Candidate {
	var out []Candidate
	for _, dir := range primitives.AllDirections {
		for start := range primitives.StartingPositions(width, height, dir, length) {
			out = append(out, Candidate{Start: start, Direction: dir})
		}
	}
	return out
}
