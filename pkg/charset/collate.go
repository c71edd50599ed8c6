package charset

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator returns the collator used for every character ordering in the
// pipeline: bucket rendering and truncation tie-breaks. It is pinned to the
// CLDR "zh" tailoring (pinyin order for Han characters) so that a given input
// set and limit always produce the same output bytes.
//
// collate.Collator is not safe for concurrent use; the pipeline is
// single-threaded, so one collator per run is enough.
func NewCollator() *collate.Collator {
	return collate.New(language.Chinese)
}

// SortRunes sorts rs in place under the pinned collation.
func SortRunes(col *collate.Collator, rs []rune) {
	sort.Slice(rs, func(i, j int) bool {
		return col.CompareString(string(rs[i]), string(rs[j])) < 0
	})
}

// SortedRunes returns the members of s as a new slice in collation order.
func SortedRunes(col *collate.Collator, s Set) []rune {
	rs := s.Runes()
	SortRunes(col, rs)
	return rs
}
