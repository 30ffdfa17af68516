// Package filter narrows a word list to the candidates compatible with a
// (guess, pattern) observation.
//
// A pattern implies two kinds of constraints. Hit positions pin a letter to a
// slot. For each letter of the guess, the hit and present marks give a lower
// bound on how often the letter occurs in the target; an absent mark for the
// same letter makes that bound exact. Every word satisfying the constraints
// produces exactly that pattern against the guess, so filtering a solution
// set by (guess, pattern) yields precisely that pattern's partition group.
package filter

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/davost/wordrank/internal/domain/feedback"
	"github.com/davost/wordrank/internal/domain/words"
)

// letterBounds is the occurrence range a pattern implies for one letter.
type letterBounds struct {
	min int
	max int
}

// bounds derives the per-letter occurrence bounds and returns them keyed by
// letter, only for letters appearing in the guess.
func bounds(guess words.Word, marks [words.Length]feedback.Mark) map[byte]letterBounds {
	out := make(map[byte]letterBounds, words.Length)
	for i := 0; i < words.Length; i++ {
		c := guess[i]
		if _, ok := out[c]; ok {
			continue
		}
		claimed, absent := 0, false
		for j := 0; j < words.Length; j++ {
			if guess[j] != c {
				continue
			}
			if marks[j] == feedback.Absent {
				absent = true
			} else {
				claimed++
			}
		}
		b := letterBounds{min: claimed, max: words.Length}
		if absent {
			b.max = claimed
		}
		out[c] = b
	}
	return out
}

// Filter returns the members of list compatible with the pattern observed for
// guess, preserving input order.
func Filter(list []words.Word, guess words.Word, pat feedback.Pattern) ([]words.Word, error) {
	if err := guess.Check(); err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}
	if pat >= feedback.NumPatterns {
		return nil, fmt.Errorf("invalid pattern %d", pat)
	}

	marks := pat.Marks()
	perLetter := bounds(guess, marks)

	var out []words.Word
next:
	for _, w := range list {
		for i := 0; i < words.Length; i++ {
			if marks[i] == feedback.Hit && w[i] != guess[i] {
				continue next
			}
			// A non-hit mark excludes the guessed letter from this
			// slot: it would have been a hit.
			if marks[i] != feedback.Hit && w[i] == guess[i] {
				continue next
			}
		}
		for c, b := range perLetter {
			n := strings.Count(w.String(), string(c))
			if n < b.min || n > b.max {
				continue next
			}
		}
		out = append(out, w)
	}
	return out, nil
}

// Matcher answers repeated filter queries over one fixed word list using
// precomputed bitsets: for every slot and letter the set of words carrying
// that letter there, and for every letter the cumulative sets of words with
// at least k occurrences.
type Matcher struct {
	list    []words.Word
	slots   [words.Length]['z' - 'a' + 1]*bitset.BitSet
	atLeast ['z' - 'a' + 1][]*bitset.BitSet // atLeast[c][k]: words with > k occurrences of c
}

// NewMatcher indexes list. The list must hold validated words; a malformed
// entry fails with a shape error attributable to it.
func NewMatcher(list []words.Word) (*Matcher, error) {
	m := &Matcher{list: list}
	n := uint(len(list))
	for w, word := range list {
		if err := word.Check(); err != nil {
			return nil, fmt.Errorf("word %d: %w", w, err)
		}
		var counts ['z' - 'a' + 1]int
		for i := 0; i < words.Length; i++ {
			c := word[i] - 'a'
			if m.slots[i][c] == nil {
				m.slots[i][c] = bitset.New(n)
			}
			m.slots[i][c].Set(uint(w))
			counts[c]++
		}
		for c, count := range counts {
			for k := 0; k < count; k++ {
				if len(m.atLeast[c]) <= k {
					m.atLeast[c] = append(m.atLeast[c], bitset.New(n))
				}
				m.atLeast[c][k].Set(uint(w))
			}
		}
	}
	return m, nil
}

// Matching returns the indexed words compatible with the pattern observed for
// guess, in list order.
func (m *Matcher) Matching(guess words.Word, pat feedback.Pattern) ([]words.Word, error) {
	if err := guess.Check(); err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}
	if pat >= feedback.NumPatterns {
		return nil, fmt.Errorf("invalid pattern %d", pat)
	}

	marks := pat.Marks()
	candidates := bitset.New(uint(len(m.list))).Complement()

	for i := 0; i < words.Length; i++ {
		c := guess[i] - 'a'
		slot := m.slots[i][c]
		if marks[i] == feedback.Hit {
			if slot == nil {
				return nil, nil
			}
			candidates.InPlaceIntersection(slot)
		} else if slot != nil {
			candidates.InPlaceDifference(slot)
		}
	}

	for c, b := range bounds(guess, marks) {
		sets := m.atLeast[c-'a']
		if b.min > 0 {
			if len(sets) < b.min {
				return nil, nil
			}
			candidates.InPlaceIntersection(sets[b.min-1])
		}
		if b.max < words.Length && len(sets) > b.max {
			candidates.InPlaceDifference(sets[b.max])
		}
	}

	var out []words.Word
	for i, ok := candidates.NextSet(0); ok; i, ok = candidates.NextSet(i + 1) {
		out = append(out, m.list[i])
	}
	return out, nil
}
