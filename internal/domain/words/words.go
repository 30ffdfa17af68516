// Package words defines the Word type shared by the whole analysis and the
// validation rules for it. The error taxonomy for malformed input is rooted
// here so that callers can use errors.Is across package boundaries.
package words

import (
	"fmt"
)

// Length is the fixed word length. Both Wordle word lists (solutions and
// accepted guesses) are five letters.
const Length = 5

// Word is a fixed-length lowercase word. Immutable once constructed.
type Word string

// New validates s and returns it as a Word.
// Violations of length or alphabet are reported as ErrShape.
func New(s string) (Word, error) {
	if len(s) != Length {
		return "", fmt.Errorf("%w: %q has length %d, want %d", ErrShape, s, len(s), Length)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", fmt.Errorf("%w: %q contains %q at position %d, want a-z", ErrShape, s, s[i], i)
		}
	}
	return Word(s), nil
}

// Check reports whether w still satisfies the Word invariants. Used by
// packages that receive words from callers other than the validated loaders.
func (w Word) Check() error {
	_, err := New(string(w))
	return err
}

func (w Word) String() string {
	return string(w)
}
