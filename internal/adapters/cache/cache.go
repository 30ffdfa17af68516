// Package cache persists the precomputed guess-by-solution pattern table.
//
// Computing every feedback pattern dominates a full-vocabulary run, and the
// table only depends on the two word lists, so it is worth keeping on disk
// between runs. The file is a gob blob holding the lists alongside the
// matrix; a load against different lists reports the table as stale and the
// caller recomputes.
package cache

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davost/wordrank/internal/domain/feedback"
	"github.com/davost/wordrank/internal/domain/words"
	"github.com/davost/wordrank/pkg/metrics"
)

// Table is the pattern matrix for a (guesses, solutions) pair, row-major by
// guess index.
type Table struct {
	Guesses   []words.Word
	Solutions []words.Word
	Patterns  [][]feedback.Pattern
}

// Compute fills a table by evaluating the feedback function over the full
// cross product.
func Compute(guesses, solutions []words.Word) (*Table, error) {
	t := &Table{
		Guesses:   guesses,
		Solutions: solutions,
		Patterns:  make([][]feedback.Pattern, len(guesses)),
	}
	for i, guess := range guesses {
		row := make([]feedback.Pattern, len(solutions))
		for j, solution := range solutions {
			pat, err := feedback.Of(guess, solution)
			if err != nil {
				return nil, fmt.Errorf("guess %d (%s), solution %d (%s): %w", i, guess, j, solution, err)
			}
			row[j] = pat
		}
		t.Patterns[i] = row
	}
	return t, nil
}

// Row returns the pattern row for one guess index.
func (t *Table) Row(i int) []feedback.Pattern {
	return t.Patterns[i]
}

// Matches reports whether the table was computed for exactly these lists.
func (t *Table) Matches(guesses, solutions []words.Word) bool {
	if len(t.Guesses) != len(guesses) || len(t.Solutions) != len(solutions) {
		return false
	}
	for i := range guesses {
		if t.Guesses[i] != guesses[i] {
			return false
		}
	}
	for i := range solutions {
		if t.Solutions[i] != solutions[i] {
			return false
		}
	}
	return true
}

// Load reads a table from path and verifies it against the given lists.
// A table computed for other lists fails with ErrStale.
func Load(path string, guesses, solutions []words.Word) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		metrics.RecordCacheMiss()
		return nil, fmt.Errorf("open pattern cache: %w", err)
	}
	defer f.Close()

	var t Table
	if err := gob.NewDecoder(f).Decode(&t); err != nil {
		metrics.RecordCacheMiss()
		return nil, fmt.Errorf("decode pattern cache %s: %w", path, err)
	}

	if !t.Matches(guesses, solutions) {
		metrics.RecordCacheMiss()
		return nil, fmt.Errorf("pattern cache %s: %w", path, ErrStale)
	}

	metrics.RecordCacheHit()
	return &t, nil
}

// Save writes the table to path atomically: gob to a temp file in the same
// directory, then rename over the destination.
func Save(path string, t *Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create pattern cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(t); err != nil {
		tmp.Close()
		return fmt.Errorf("encode pattern cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close pattern cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace pattern cache: %w", err)
	}
	return nil
}
