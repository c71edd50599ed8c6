package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
)

// Fixed anchor substrings locating the preserved regions of the baseline
// document. The prefix runs from the start of the document through the line
// containing PrefixAnchor; the suffix runs from the start of the line
// containing SuffixAnchor to the end.
const (
	PrefixAnchor = "按笔画分组"
	SuffixAnchor = "符号与数字"
)

// SplitRegions extracts the preserved prefix and suffix regions from a
// baseline document. An absent anchor yields an empty region; that is the
// documented fallback, not an error.
func SplitRegions(doc string) (prefix, suffix string) {
	if i := strings.Index(doc, PrefixAnchor); i >= 0 {
		end := strings.IndexByte(doc[i:], '\n')
		if end < 0 {
			prefix = doc
		} else {
			prefix = doc[:i+end]
		}
	}
	if i := strings.Index(doc, SuffixAnchor); i >= 0 {
		start := strings.LastIndexByte(doc[:i], '\n')
		suffix = doc[start+1:]
	}
	return prefix, suffix
}

// Render writes the final bucket map back into the baseline document's
// layout: the original prefix verbatim, a blank line, one `<n>画<TAB><chars>`
// line per non-empty bucket in ascending stroke order with characters
// space-joined in collation order, a blank line, and the original suffix
// verbatim. Surrounding whitespace is trimmed and the result carries exactly
// one trailing newline.
func Render(b Buckets, original string, col *collate.Collator) string {
	prefix, suffix := SplitRegions(original)

	var lines []string
	for _, n := range b.Counts() {
		if b[n].Len() == 0 {
			continue
		}
		chars := make([]string, 0, b[n].Len())
		for _, r := range SortedRunes(col, b[n]) {
			chars = append(chars, string(r))
		}
		lines = append(lines, fmt.Sprintf("%d画\t%s", n, strings.Join(chars, " ")))
	}

	var parts []string
	for _, p := range []string{prefix, strings.Join(lines, "\n"), suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n")) + "\n"
}
