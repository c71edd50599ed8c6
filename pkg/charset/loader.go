package charset

import (
	"regexp"
	"strings"
)

// bucketLine matches a body line of the baseline document: one or more
// digits, an optional 画 and/or spaces, a TAB, then the character list.
var bucketLine = regexp.MustCompile(`^\d+画?[ 　]*\t(.+)$`)

// ParseDocument extracts the character set from a baseline document.
//
// Every line shaped `<n>画<TAB><space-joined characters>` contributes its
// characters; the list is split on whitespace and only tokens of exactly one
// character are retained. All other lines (header, symbol block, blanks) are
// ignored. ParseDocument is pure: it never fails, an unreadable file is the
// caller's problem.
func ParseDocument(text string) Set {
	out := make(Set)
	for _, line := range strings.Split(text, "\n") {
		m := bucketLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, tok := range strings.Fields(m[1]) {
			if rs := []rune(tok); len(rs) == 1 {
				out[rs[0]] = struct{}{}
			}
		}
	}
	return out
}
