package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davost/wordrank/internal/domain/feedback"
	"github.com/davost/wordrank/internal/domain/filter"
	"github.com/davost/wordrank/internal/domain/partition"
	"github.com/davost/wordrank/internal/domain/words"
)

func asWords(ss ...string) []words.Word {
	ws := make([]words.Word, len(ss))
	for i, s := range ss {
		ws[i] = words.Word(s)
	}
	return ws
}

func pat(t *testing.T, s string) feedback.Pattern {
	t.Helper()
	p, err := feedback.Parse(s)
	require.NoError(t, err)
	return p
}

func TestFilter(t *testing.T) {
	list := asWords("polar", "porch", "poser", "power", "brand", "crazy", "artsy", "gravy", "trash")

	// polar is out: its final r would have been a hit, not a present.
	got, err := filter.Filter(list, words.Word("power"), pat(t, "ggxxy"))
	require.NoError(t, err)
	assert.Equal(t, asWords("porch"), got)

	// One a, one r, a trailing y hit and neither a nor r where guessed.
	got, err = filter.Filter(list, words.Word("array"), pat(t, "ygxxg"))
	require.NoError(t, err)
	assert.Equal(t, asWords("crazy", "gravy"), got)
}

func TestFilterRejectsBadInput(t *testing.T) {
	list := asWords("polar", "porch")

	_, err := filter.Filter(list, words.Word("sixsix"), pat(t, "ggxxy"))
	assert.ErrorIs(t, err, words.ErrShape)

	_, err = filter.Filter(list, words.Word("power"), feedback.NumPatterns)
	assert.Error(t, err)
}

func TestMatcherAgreesWithFilter(t *testing.T) {
	list := asWords("polar", "porch", "poser", "power", "brand", "crazy", "artsy", "gravy", "trash")
	m, err := filter.NewMatcher(list)
	require.NoError(t, err)

	for _, tc := range []struct {
		guess   string
		pattern string
	}{
		{"power", "ggxxy"},
		{"array", "ygxxy"},
		{"trash", "ggggg"},
		{"zzzzz", "xxxxx"},
		{"crazy", "gyxxx"},
	} {
		want, err := filter.Filter(list, words.Word(tc.guess), pat(t, tc.pattern))
		require.NoError(t, err)

		got, err := m.Matching(words.Word(tc.guess), pat(t, tc.pattern))
		require.NoError(t, err)
		assert.Equal(t, want, got, "guess %s pattern %s", tc.guess, tc.pattern)
	}
}

func TestMatcherRejectsMalformedList(t *testing.T) {
	_, err := filter.NewMatcher(asWords("polar", "bad"))
	assert.ErrorIs(t, err, words.ErrShape)
}

// Filtering a solution set by an observed pattern must recover exactly that
// pattern's partition group.
func TestFilterMatchesPartitionGroups(t *testing.T) {
	solutions := asWords("polar", "porch", "poser", "power", "brand", "crazy", "artsy", "gravy", "trash", "aabbb", "ababb")
	guesses := asWords("power", "array", "aabbb", "zzzzz", "trash")

	for _, guess := range guesses {
		part, err := partition.Build(guess, solutions)
		require.NoError(t, err)

		for _, p := range part.Patterns() {
			got, err := filter.Filter(solutions, guess, p)
			require.NoError(t, err)
			assert.Equal(t, part.Group(p), got, "guess %s pattern %s", guess, p)
		}
	}
}
