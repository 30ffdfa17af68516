package words

import "errors"

// Sentinel kinds for malformed analysis input. These allow errors.Is/As from
// callers anywhere in the tree; packages wrap them with the offending word
// and its source.
var (
	// ErrShape marks a word whose length or alphabet does not match the
	// fixed word shape.
	ErrShape = errors.New("malformed word")

	// ErrEmptyInput marks an empty solution set or guess vocabulary.
	ErrEmptyInput = errors.New("empty input")
)
