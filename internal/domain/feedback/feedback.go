// Package feedback computes the Wordle letter feedback for a (guess,
// solution) pair. The pattern is a deterministic, pure function of the two
// words; the duplicate-letter rule is the only subtle part: a repeated guess
// letter is marked Present at most as many times as it occurs, unconsumed by
// hits, in the solution.
package feedback

import (
	"fmt"

	"github.com/davost/wordrank/internal/domain/words"
)

// Mark classifies one letter of a guess against the solution.
type Mark uint8

const (
	// Absent means the letter does not occur in the solution, or every
	// occurrence is already consumed by a Hit or an earlier Present.
	Absent Mark = iota
	// Present means the letter occurs elsewhere in the solution.
	Present
	// Hit means the letter matches the solution at this position.
	Hit
)

// Pattern packs the five marks base-3, first position most significant.
// Valid values are 0..NumPatterns-1.
type Pattern uint8

const (
	// NumPatterns is 3^words.Length, the number of distinct patterns.
	NumPatterns = 243

	// AllHit is the pattern of a guess equal to the solution.
	AllHit Pattern = NumPatterns - 1
)

// markLetters is the textual notation of the marks, indexed by Mark.
// 'x' absent, 'y' present, 'g' hit.
const markLetters = "xyg"

// Of returns the feedback pattern for guess against solution.
// Both words must share the fixed shape; violations fail with a shape error
// naming the offending word.
func Of(guess, solution words.Word) (Pattern, error) {
	if err := guess.Check(); err != nil {
		return 0, fmt.Errorf("guess: %w", err)
	}
	if err := solution.Check(); err != nil {
		return 0, fmt.Errorf("solution: %w", err)
	}

	// First pass: hits, consuming the matched solution letters. The
	// remaining letter counts bound how many Present marks each letter
	// may still receive.
	var marks [words.Length]Mark
	var remaining ['z' - 'a' + 1]uint8
	for i := 0; i < words.Length; i++ {
		if guess[i] == solution[i] {
			marks[i] = Hit
		} else {
			remaining[solution[i]-'a']++
		}
	}

	// Second pass: left to right, each non-hit position consumes one
	// remaining occurrence if any is left, otherwise it is absent.
	for i := 0; i < words.Length; i++ {
		if marks[i] == Hit {
			continue
		}
		if c := guess[i] - 'a'; remaining[c] > 0 {
			marks[i] = Present
			remaining[c]--
		}
	}

	return pack(marks), nil
}

func pack(marks [words.Length]Mark) Pattern {
	var p Pattern
	for _, m := range marks {
		p = p*3 + Pattern(m)
	}
	return p
}

// Marks unpacks the pattern into per-position marks.
func (p Pattern) Marks() [words.Length]Mark {
	var marks [words.Length]Mark
	for i := words.Length - 1; i >= 0; i-- {
		marks[i] = Mark(p % 3)
		p /= 3
	}
	return marks
}

// String renders the pattern in the x/y/g notation, e.g. "ygxxx".
func (p Pattern) String() string {
	marks := p.Marks()
	buf := make([]byte, words.Length)
	for i, m := range marks {
		buf[i] = markLetters[m]
	}
	return string(buf)
}

// Parse reads a pattern from the x/y/g notation.
func Parse(s string) (Pattern, error) {
	if len(s) != words.Length {
		return 0, fmt.Errorf("pattern %q has length %d, want %d", s, len(s), words.Length)
	}
	var p Pattern
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'x':
			p = p * 3
		case 'y':
			p = p*3 + Pattern(Present)
		case 'g':
			p = p*3 + Pattern(Hit)
		default:
			return 0, fmt.Errorf("pattern %q contains %q at position %d, want x, y or g", s, s[i], i)
		}
	}
	return p, nil
}
