// Package wordlist loads and validates line-delimited word lists from disk.
//
// The loader is the trust boundary for word shape: everything past it works
// with validated words. Errors always carry the file and 1-based line number
// of the offending entry, because malformed vocabulary data is fatal for the
// whole run and has to be diagnosable from the message alone.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/davost/wordrank/internal/domain/words"
)

// Load reads one word per line from path. Lines are trimmed of surrounding
// whitespace and lowercased; blank lines are not tolerated. Duplicate words
// and shape violations fail the load attributed to their line.
func Load(path string) ([]words.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var list []words.Word
	seen := make(map[words.Word]int)

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		raw := strings.ToLower(strings.TrimSpace(scanner.Text()))
		w, err := words.New(raw)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if first, ok := seen[w]; ok {
			return nil, fmt.Errorf("%s:%d: %w: %q already listed at line %d", path, line, words.ErrShape, w, first)
		}
		seen[w] = line
		list = append(list, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", path, words.ErrEmptyInput)
	}
	return list, nil
}
