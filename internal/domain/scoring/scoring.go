// Package scoring turns a feedback partition into the statistics ranked by
// the analysis.
package scoring

import (
	"fmt"

	"github.com/davost/wordrank/internal/domain/partition"
	"github.com/davost/wordrank/internal/domain/words"
)

// Result contains the computed statistics for one guess.
type Result struct {
	Guess words.Word

	// ExpectedRemaining is the size-weighted mean group size: the number
	// of candidates a solution drawn uniformly at random expects to see
	// remaining after this guess. Sum over groups of size squared,
	// divided by the solution count.
	ExpectedRemaining float64

	// MaxGroup is the largest group size, the worst case remaining
	// candidates after this guess.
	MaxGroup int

	// GroupCount is the number of distinct feedback patterns observed,
	// at most feedback.NumPatterns.
	GroupCount int
}

// Score computes the statistics of a built partition.
// An empty partition is undefined and fails rather than divide by zero.
func Score(p *partition.Partition) (Result, error) {
	n := p.Total()
	if n == 0 {
		return Result{}, fmt.Errorf("partition for %q: %w", p.Guess(), words.ErrEmptyInput)
	}

	sumSquares := 0
	maxGroup := 0
	for _, pat := range p.Patterns() {
		size := len(p.Group(pat))
		sumSquares += size * size
		if size > maxGroup {
			maxGroup = size
		}
	}

	return Result{
		Guess:             p.Guess(),
		ExpectedRemaining: float64(sumSquares) / float64(n),
		MaxGroup:          maxGroup,
		GroupCount:        p.GroupCount(),
	}, nil
}
