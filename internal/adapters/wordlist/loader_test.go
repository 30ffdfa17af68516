package wordlist_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/davost/wordrank/internal/adapters/wordlist"
	"github.com/davost/wordrank/internal/domain/words"
	. "github.com/smartystreets/goconvey/convey"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("Given the word list loader", t, func() {
		Convey("When loading a well-formed list", func() {
			path := writeList(t, "crane\nslate\nraise\n")
			list, err := wordlist.Load(path)

			Convey("Then the words arrive validated, in file order", func() {
				So(err, ShouldBeNil)
				So(list, ShouldResemble, []words.Word{"crane", "slate", "raise"})
			})
		})

		Convey("When lines carry stray whitespace or case", func() {
			path := writeList(t, "  CRANE \nslate\n")
			list, err := wordlist.Load(path)

			Convey("Then entries are normalized to lowercase", func() {
				So(err, ShouldBeNil)
				So(list, ShouldResemble, []words.Word{"crane", "slate"})
			})
		})

		Convey("When a line has the wrong length", func() {
			path := writeList(t, "crane\ncranes\nslate\n")
			_, err := wordlist.Load(path)

			Convey("Then the load fails naming file and line", func() {
				So(errors.Is(err, words.ErrShape), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, ":2:")
				So(err.Error(), ShouldContainSubstring, "cranes")
			})
		})

		Convey("When a line holds a foreign character", func() {
			path := writeList(t, "crane\ncr4ne\n")
			_, err := wordlist.Load(path)

			Convey("Then the load fails with a shape error", func() {
				So(errors.Is(err, words.ErrShape), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, ":2:")
			})
		})

		Convey("When a word is listed twice", func() {
			path := writeList(t, "crane\nslate\ncrane\n")
			_, err := wordlist.Load(path)

			Convey("Then the load fails naming both lines", func() {
				So(errors.Is(err, words.ErrShape), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, ":3:")
				So(err.Error(), ShouldContainSubstring, "line 1")
			})
		})

		Convey("When the file is empty", func() {
			path := writeList(t, "")
			_, err := wordlist.Load(path)

			Convey("Then the load fails with an empty-input error", func() {
				So(errors.Is(err, words.ErrEmptyInput), ShouldBeTrue)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := wordlist.Load(filepath.Join(t.TempDir(), "missing.txt"))

			Convey("Then the load fails with the underlying error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
			})
		})
	})
}
