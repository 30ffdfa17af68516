// Package partition groups a solution set by the feedback pattern a fixed
// guess would produce against each solution. A partition is built per guess,
// consumed into one score record and discarded.
package partition

import (
	"fmt"

	"github.com/davost/wordrank/internal/domain/feedback"
	"github.com/davost/wordrank/internal/domain/words"
)

// Partition maps feedback patterns to the solutions producing them for one
// fixed guess. Iteration order is the first-encounter order of the patterns,
// and solutions keep their input order within each group, so two builds over
// identical inputs are indistinguishable.
type Partition struct {
	guess  words.Word
	order  []feedback.Pattern
	groups map[feedback.Pattern][]words.Word
	total  int
}

// Build computes the partition of solutions for guess. A malformed word
// fails the build with an error attributable to that element; nothing is
// silently skipped.
func Build(guess words.Word, solutions []words.Word) (*Partition, error) {
	p := &Partition{
		guess:  guess,
		groups: make(map[feedback.Pattern][]words.Word),
	}
	for i, solution := range solutions {
		pat, err := feedback.Of(guess, solution)
		if err != nil {
			return nil, fmt.Errorf("solution %d (%s): %w", i, solution, err)
		}
		p.add(pat, solution)
	}
	return p, nil
}

// FromRow assembles the partition from a precomputed pattern row, one pattern
// per solution in order. Rows come from the on-disk pattern table; building
// from them skips the feedback computation entirely.
func FromRow(guess words.Word, solutions []words.Word, row []feedback.Pattern) (*Partition, error) {
	if len(row) != len(solutions) {
		return nil, fmt.Errorf("pattern row for %s has %d entries, want %d", guess, len(row), len(solutions))
	}
	p := &Partition{
		guess:  guess,
		groups: make(map[feedback.Pattern][]words.Word),
	}
	for i, pat := range row {
		if pat >= feedback.NumPatterns {
			return nil, fmt.Errorf("pattern row for %s has invalid pattern %d at entry %d", guess, pat, i)
		}
		p.add(pat, solutions[i])
	}
	return p, nil
}

func (p *Partition) add(pat feedback.Pattern, solution words.Word) {
	if _, ok := p.groups[pat]; !ok {
		p.order = append(p.order, pat)
	}
	p.groups[pat] = append(p.groups[pat], solution)
	p.total++
}

// Guess returns the guess this partition was built for.
func (p *Partition) Guess() words.Word {
	return p.guess
}

// Patterns returns the observed patterns in first-encounter order.
// The returned slice is owned by the partition; callers must not mutate it.
func (p *Partition) Patterns() []feedback.Pattern {
	return p.order
}

// Group returns the solutions producing pat, in input order.
func (p *Partition) Group(pat feedback.Pattern) []words.Word {
	return p.groups[pat]
}

// Total returns the number of solutions partitioned. It always equals the
// sum of the group sizes.
func (p *Partition) Total() int {
	return p.total
}

// GroupCount returns the number of distinct patterns observed.
func (p *Partition) GroupCount() int {
	return len(p.order)
}

// MaxGroup returns the size of the largest group, 0 for an empty partition.
func (p *Partition) MaxGroup() int {
	max := 0
	for _, pat := range p.order {
		if n := len(p.groups[pat]); n > max {
			max = n
		}
	}
	return max
}
