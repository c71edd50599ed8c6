// Package strokes implements the stroke-count capability behind the
// classifier. The data lives in two embedded plain-text assets: a direct
// character → stroke-count table and a character → ordered stroke-sequence
// table used by the fallback path.
//
// The tables are parsed once and shared; a Table is immutable after loading.
package strokes

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/strokes.tsv
var countsData string

//go:embed data/decomp.tsv
var decompData string

// Table answers stroke queries from the embedded data assets. It implements
// charset.StrokeSource.
type Table struct {
	counts map[rune]int
	decomp map[rune][]rune
}

var (
	loadOnce sync.Once
	loaded   *Table
	loadErr  error
)

// Load parses the embedded tables. The result is cached; every call returns
// the same immutable Table.
func Load() (*Table, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(countsData, decompData)
	})
	return loaded, loadErr
}

// Strokes returns the direct stroke count for r.
func (t *Table) Strokes(r rune) (int, bool) {
	n, ok := t.counts[r]
	return n, ok
}

// Decomposition returns the ordered stroke sequence for r.
func (t *Table) Decomposition(r rune) ([]rune, bool) {
	seq, ok := t.decomp[r]
	return seq, ok
}

// Size returns the number of characters with a direct stroke count.
func (t *Table) Size() int { return len(t.counts) }

func parse(counts, decomp string) (*Table, error) {
	t := &Table{
		counts: make(map[rune]int),
		decomp: make(map[rune][]rune),
	}
	for i, line := range strings.Split(counts, "\n") {
		ch, value, ok := splitRow(line)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("strokes.tsv line %d: bad count %q", i+1, value)
		}
		t.counts[ch] = n
	}
	for i, line := range strings.Split(decomp, "\n") {
		ch, value, ok := splitRow(line)
		if !ok {
			continue
		}
		seq := []rune(value)
		if len(seq) == 0 {
			return nil, fmt.Errorf("decomp.tsv line %d: empty sequence", i+1)
		}
		t.decomp[ch] = seq
	}
	return t, nil
}

// splitRow parses one `<char><TAB><value>` row. Blank lines and '#' comments
// are skipped; so are malformed keys, since a key must be a single rune.
func splitRow(line string) (rune, string, bool) {
	line = strings.TrimRight(line, "\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return 0, "", false
	}
	key, value, found := strings.Cut(line, "\t")
	if !found {
		return 0, "", false
	}
	rs := []rune(key)
	if len(rs) != 1 {
		return 0, "", false
	}
	return rs[0], strings.TrimSpace(value), true
}
