package charset

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// Heuristic candidate pool: modern/common characters unioned into every run.
// Kept as a versioned plain-data asset rather than a literal in code.
//
//go:embed data/candidates.txt
var candidatesData string

// HeuristicPool returns the embedded candidate pool as a fresh set. The pool
// is parsed on every call so no caller can mutate shared state.
func HeuristicPool() Set {
	return ParseList(candidatesData)
}

// ParseList parses an external character list: characters separated by
// whitespace or commas, one or many per line. Lines starting with '#' are
// comments. Only tokens of exactly one character are honored; everything
// else is dropped silently.
func ParseList(text string) Set {
	out := make(Set)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '，' || r == ' ' || r == '\t' || r == '\r'
		}) {
			if rs := []rune(tok); len(rs) == 1 {
				out[rs[0]] = struct{}{}
			}
		}
	}
	return out
}

// ReadList reads and parses one external list file.
func ReadList(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read include list %s: %w", path, err)
	}
	return ParseList(string(data)), nil
}

// AggregateIncludes folds zero or more external list files into one set.
// A file that cannot be read is reported through warn and skipped; the
// remaining files still contribute. warn may be nil.
func AggregateIncludes(paths []string, warn func(format string, args ...any)) Set {
	out := make(Set)
	for _, p := range paths {
		s, err := ReadList(p)
		if err != nil {
			if warn != nil {
				warn("skipping include file: %v", err)
			}
			continue
		}
		out = UnionAll(out, s)
	}
	return out
}
