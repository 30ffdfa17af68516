// Package ranking evaluates every guess in a vocabulary against the solution
// set and orders the score records into the final table.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/davost/wordrank/internal/domain/partition"
	"github.com/davost/wordrank/internal/domain/scoring"
	"github.com/davost/wordrank/internal/domain/words"
)

// Record is one row of the ranked table.
type Record = scoring.Result

// Evaluate builds and scores the partition of solutions for one guess.
func Evaluate(guess words.Word, solutions []words.Word) (Record, error) {
	p, err := partition.Build(guess, solutions)
	if err != nil {
		return Record{}, fmt.Errorf("partition %s: %w", guess, err)
	}
	result, err := scoring.Score(p)
	if err != nil {
		return Record{}, fmt.Errorf("score %s: %w", guess, err)
	}
	return result, nil
}

// Rank evaluates all guesses sequentially and returns the sorted table.
// Callers wanting the parallel path run the evaluations through the worker
// pool and call Sort on the merged records; the result is identical.
func Rank(ctx context.Context, guesses, solutions []words.Word) ([]Record, error) {
	if err := CheckInputs(guesses, solutions); err != nil {
		return nil, err
	}

	records := make([]Record, len(guesses))
	for i, guess := range guesses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("ranking interrupted: %w", ctx.Err())
		default:
		}
		record, err := Evaluate(guess, solutions)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	Sort(records)
	return records, nil
}

// CheckInputs rejects empty vocabularies before any evaluation starts.
func CheckInputs(guesses, solutions []words.Word) error {
	if len(guesses) == 0 {
		return fmt.Errorf("guess vocabulary: %w", words.ErrEmptyInput)
	}
	if len(solutions) == 0 {
		return fmt.Errorf("solution set: %w", words.ErrEmptyInput)
	}
	return nil
}

// Sort orders records ascending by expected remaining, ties broken by
// ascending max group, then by the original vocabulary order. Records must
// arrive in vocabulary order; the stable sort preserves it for full ties, so
// repeated runs produce bit-identical tables.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ExpectedRemaining != records[j].ExpectedRemaining {
			return records[i].ExpectedRemaining < records[j].ExpectedRemaining
		}
		return records[i].MaxGroup < records[j].MaxGroup
	})
}
