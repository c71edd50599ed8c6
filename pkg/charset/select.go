package charset

import "golang.org/x/text/collate"

// Truncate enforces the target size limit on a bucket map.
//
// If the total bucketed count is at most limit, the result is an identical
// copy. Otherwise buckets are walked in ascending stroke order and characters
// within a bucket in collation order, accumulating until exactly limit
// characters are kept; the walk stops mid-bucket and everything after it is
// discarded. The result is deterministic for a given input and limit, and
// systematically favors low-stroke characters — a documented bias of the
// policy, not an artifact.
//
// A limit of zero yields an empty bucket map. Truncate never mutates b.
func Truncate(b Buckets, limit int, col *collate.Collator) Buckets {
	out := make(Buckets, len(b))
	if b.Total() <= limit {
		for n, s := range b {
			out[n] = UnionAll(s)
		}
		return out
	}

	remaining := limit
	for _, n := range b.Counts() {
		if remaining == 0 {
			break
		}
		kept := make(Set)
		for _, r := range SortedRunes(col, b[n]) {
			if remaining == 0 {
				break
			}
			kept[r] = struct{}{}
			remaining--
		}
		if kept.Len() > 0 {
			out[n] = kept
		}
	}
	return out
}

// Flatten returns every bucketed character as one set.
func Flatten(b Buckets) Set {
	out := make(Set)
	for _, s := range b {
		for r := range s {
			out[r] = struct{}{}
		}
	}
	return out
}
