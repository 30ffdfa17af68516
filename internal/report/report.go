// Package report renders ranking results for the terminal.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mitchellh/colorstring"
	"golang.org/x/exp/constraints"

	"github.com/davost/wordrank/internal/domain/feedback"
	"github.com/davost/wordrank/internal/domain/partition"
	"github.com/davost/wordrank/internal/domain/ranking"
	"github.com/davost/wordrank/internal/domain/words"
)

const ellipsis = "      ..."

// Table writes the ranked guesses, one line per guess. With a positive trim
// it prints only the best and worst trim entries around an ellipsis line;
// otherwise it prints everything. The records are assumed sorted already.
// solutionCount is the size of the solution set and feeds the average group
// size column.
func Table(w io.Writer, records []ranking.Record, solutionCount, trim int) error {
	if len(records) == 0 {
		return fmt.Errorf("render table: %w", words.ErrEmptyInput)
	}

	show := func(i int) error {
		r := records[i]
		avgGroup := float64(solutionCount) / float64(r.GroupCount)
		_, err := fmt.Fprintf(w, "%5d %s: %.2f (max %d, groups %d x ~%.2f)\n",
			i+1, r.Guess, r.ExpectedRemaining, r.MaxGroup, r.GroupCount, avgGroup)
		return err
	}

	if trim <= 0 || 2*trim >= len(records) {
		for i := range records {
			if err := show(i); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < trim; i++ {
		if err := show(i); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ellipsis); err != nil {
		return err
	}
	for i := len(records) - trim; i < len(records); i++ {
		if err := show(i); err != nil {
			return err
		}
	}
	return nil
}

// Breakdown writes one line per feedback group of a single guess, largest
// group first, with the guess rendered in Wordle tile colors for that
// group's pattern. Color output can be disabled for plain terminals.
func Breakdown(w io.Writer, guess words.Word, solutions []words.Word, color bool) error {
	p, err := partition.Build(guess, solutions)
	if err != nil {
		return fmt.Errorf("breakdown %s: %w", guess, err)
	}

	pats := append([]feedback.Pattern(nil), p.Patterns()...)
	sortByDesc(pats, func(pat feedback.Pattern) int {
		return len(p.Group(pat))
	})

	colorize := colorstring.Colorize{Colors: colorstring.DefaultColors, Disable: !color, Reset: true}
	for _, pat := range pats {
		line := fmt.Sprintf("%s %4d  %s", tiles(colorize, guess, pat), len(p.Group(pat)), pat)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// tiles renders the guess letter by letter with the pattern's tile colors.
func tiles(c colorstring.Colorize, guess words.Word, pat feedback.Pattern) string {
	marks := pat.Marks()
	var b strings.Builder
	for i, mark := range marks {
		letter := string(guess[i])
		switch mark {
		case feedback.Hit:
			b.WriteString(c.Color("[black][_green_]" + letter))
		case feedback.Present:
			b.WriteString(c.Color("[black][_yellow_]" + letter))
		default:
			b.WriteString(c.Color("[white][_dark_gray_]" + letter))
		}
	}
	return b.String()
}

// sortByDesc stably sorts the slice by a key function, largest key first.
func sortByDesc[T any, K constraints.Ordered](items []T, key func(T) K) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) > key(items[j])
	})
}
