// Package wordbank loads and normalizes the banks of words a puzzle is built
// from.
package wordbank

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"crosswarped.com/wordsearch"
)

// Source provides the words of a named scope.
type Source interface {
	Words(ctx context.Context, scope string) ([]string, error)
}

// Normalize upper-cases and trims every word, dropping blanks.
func Normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = wordsearch.NormalizeWord(w)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// FromReader reads one word per line. Blank lines and lines starting with
// '#' are skipped. Words are normalized but not validated.
func FromReader(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, wordsearch.NormalizeWord(line))
	}
	return words, scanner.Err()
}

func FromFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := FromReader(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}

// Rejected is a bank word that would fail pre-validation.
type Rejected struct {
	Line   int
	Word   string
	Reason error
}

// Check validates each word on its own against a width x height grid.
func Check(words []string, width, height int) []Rejected {
	var out []Rejected
	for i, w := range words {
		if err := wordsearch.ValidateBank([]string{w}, width, height); err != nil {
			out = append(out, Rejected{Line: i + 1, Word: w, Reason: err})
		}
	}
	return out
}

// StaticSource serves fixed word lists by scope.
type StaticSource map[string][]string

func (s StaticSource) Words(_ context.Context, scope string) ([]string, error) {
	words, ok := s[scope]
	if !ok {
		return nil, fmt.Errorf("unknown word scope %q", scope)
	}
	return Normalize(words), nil
}
