package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/davost/wordrank/internal/domain/ranking"
	"github.com/davost/wordrank/internal/domain/words"
	"github.com/davost/wordrank/internal/report"
)

func record(guess string, expected float64, max, groups int) ranking.Record {
	return ranking.Record{
		Guess:             words.Word(guess),
		ExpectedRemaining: expected,
		MaxGroup:          max,
		GroupCount:        groups,
	}
}

func TestTable(t *testing.T) {
	Convey("Given a sorted set of records", t, func() {
		records := []ranking.Record{
			record("raise", 86.99, 182, 132),
			record("irate", 88.33, 193, 124),
			record("arise", 89.33, 182, 123),
			record("mummy", 836.24, 1321, 37),
			record("fuzzy", 873.77, 1349, 34),
		}

		Convey("When rendering without trimming", func() {
			var buf bytes.Buffer
			So(report.Table(&buf, records, 2309, 0), ShouldBeNil)
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

			Convey("Then every record gets a line with rank and stats", func() {
				So(len(lines), ShouldEqual, 5)
				So(lines[0], ShouldEqual, "    1 raise: 86.99 (max 182, groups 132 x ~17.49)")
				So(lines[4], ShouldEqual, "    5 fuzzy: 873.77 (max 1349, groups 34 x ~67.91)")
			})
		})

		Convey("When trimming to the two best and worst", func() {
			var buf bytes.Buffer
			So(report.Table(&buf, records, 2309, 2), ShouldBeNil)
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

			Convey("Then an ellipsis replaces the middle", func() {
				So(len(lines), ShouldEqual, 5)
				So(lines[0], ShouldStartWith, "    1 raise:")
				So(lines[1], ShouldStartWith, "    2 irate:")
				So(lines[2], ShouldEqual, "      ...")
				So(lines[3], ShouldStartWith, "    4 mummy:")
				So(lines[4], ShouldStartWith, "    5 fuzzy:")
			})
		})

		Convey("When the trim covers the whole list", func() {
			var buf bytes.Buffer
			So(report.Table(&buf, records, 2309, 3), ShouldBeNil)

			Convey("Then no ellipsis is printed", func() {
				So(buf.String(), ShouldNotContainSubstring, "...")
			})
		})

		Convey("When there are no records", func() {
			var buf bytes.Buffer
			err := report.Table(&buf, nil, 0, 0)

			Convey("Then the empty input error surfaces", func() {
				So(errors.Is(err, words.ErrEmptyInput), ShouldBeTrue)
			})
		})
	})
}

func TestBreakdown(t *testing.T) {
	Convey("Given a guess and a solution set", t, func() {
		solutions := []words.Word{"abcde", "abcdf", "fghij"}

		Convey("When rendering the group breakdown without color", func() {
			var buf bytes.Buffer
			So(report.Breakdown(&buf, "abcxx", solutions, false), ShouldBeNil)
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

			Convey("Then groups come out largest first with their patterns", func() {
				So(len(lines), ShouldEqual, 2)
				So(lines[0], ShouldContainSubstring, "abcxx    2  gggxx")
				So(lines[1], ShouldContainSubstring, "   1  ")
			})
		})

		Convey("When color is enabled", func() {
			var buf bytes.Buffer
			So(report.Breakdown(&buf, "abcxx", solutions, true), ShouldBeNil)

			Convey("Then ANSI escapes wrap the tiles", func() {
				So(buf.String(), ShouldContainSubstring, "\x1b[")
			})
		})

		Convey("When the guess is malformed", func() {
			var buf bytes.Buffer
			err := report.Breakdown(&buf, "toolong", solutions, false)

			Convey("Then the shape error surfaces", func() {
				So(errors.Is(err, words.ErrShape), ShouldBeTrue)
			})
		})
	})
}
