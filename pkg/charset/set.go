// Package charset implements the core character-set pipeline: parsing the
// baseline document, aggregating candidate characters, classifying them by
// stroke count, truncating to a target size, and rendering the result back
// into the baseline document's layout.
//
// Every stage is a pure fold: it takes immutable inputs and returns a new
// owned value. No stage mutates another stage's state, so a run is fully
// reproducible from its inputs.
package charset

// Basic CJK Unified Ideographs block.
const (
	cjkFirst = 0x4E00
	cjkLast  = 0x9FFF
)

// IsCJK reports whether r falls inside the basic CJK ideograph block
// (U+4E00 through U+9FFF). Characters outside this block are never
// recovered from font coverage.
func IsCJK(r rune) bool {
	return r >= cjkFirst && r <= cjkLast
}

// Set is an unordered set of single characters. Ordering is imposed only at
// render time, via the pinned collator.
type Set map[rune]struct{}

// NewSet builds a set from the given runes.
func NewSet(rs ...rune) Set {
	s := make(Set, len(rs))
	for _, r := range rs {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is a member of s.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the cardinality of s.
func (s Set) Len() int { return len(s) }

// Runes returns the members of s in unspecified order.
func (s Set) Runes() []rune {
	rs := make([]rune, 0, len(s))
	for r := range s {
		rs = append(rs, r)
	}
	return rs
}

// Union returns a new set containing every member of s and other. Neither
// input is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for r := range s {
		out[r] = struct{}{}
	}
	for r := range other {
		out[r] = struct{}{}
	}
	return out
}

// UnionAll folds any number of sets into a single new set. It is idempotent,
// commutative, and order-independent: a duplicate never increases the result's
// cardinality.
func UnionAll(sets ...Set) Set {
	out := make(Set)
	for _, s := range sets {
		for r := range s {
			out[r] = struct{}{}
		}
	}
	return out
}
