package charset

import "sort"

// StrokeSource is the external stroke-count capability consumed by the
// classifier. Implementations answer two queries: a direct stroke count and
// an ordered stroke-decomposition sequence used as a fallback.
type StrokeSource interface {
	// Strokes returns the canonical stroke count for r. ok is false when the
	// source has no direct answer.
	Strokes(r rune) (n int, ok bool)

	// Decomposition returns the ordered stroke sequence for r. ok is false
	// when the source has no decomposition.
	Decomposition(r rune) (seq []rune, ok bool)
}

// Buckets maps a stroke count to the characters classified under it.
type Buckets map[int]Set

// Total returns the number of characters across all buckets.
func (b Buckets) Total() int {
	n := 0
	for _, s := range b {
		n += s.Len()
	}
	return n
}

// Counts returns the stroke counts present in b in ascending order.
func (b Buckets) Counts() []int {
	counts := make([]int, 0, len(b))
	for n := range b {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts
}

// Classify maps every character of s to a stroke bucket.
//
// The direct count query is tried first; a missing or non-positive answer
// falls back to the decomposition sequence, whose length becomes the count.
// Characters that both queries fail on are excluded from every bucket and
// returned in unknown (codepoint order) so callers can surface the tally.
func Classify(s Set, src StrokeSource) (Buckets, []rune) {
	buckets := make(Buckets)
	var unknown []rune
	for r := range s {
		n, ok := resolveStrokes(src, r)
		if !ok {
			unknown = append(unknown, r)
			continue
		}
		if buckets[n] == nil {
			buckets[n] = make(Set)
		}
		buckets[n][r] = struct{}{}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return buckets, unknown
}

// resolveStrokes runs the two-step classification for a single character.
func resolveStrokes(src StrokeSource, r rune) (int, bool) {
	if n, ok := src.Strokes(r); ok && n > 0 {
		return n, true
	}
	if seq, ok := src.Decomposition(r); ok && len(seq) > 0 {
		return len(seq), true
	}
	return 0, false
}
