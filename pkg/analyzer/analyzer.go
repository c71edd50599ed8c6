// Package analyzer independently verifies a generated charset document.
//
// It is strictly read-only QA: it computes statistics over the document text
// it is given and never writes anything back.
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hanworks/hanset/pkg/charset"
)

// DefaultBaselineCount is the reference cardinality the document's character
// count is compared against when no other count is configured.
const DefaultBaselineCount = 3500

// DefaultSentinels are the characters whose membership is always checked:
// the most frequent character of modern Chinese and the single-stroke 一.
var DefaultSentinels = []rune{'的', '一'}

// Options configures an analysis run.
type Options struct {
	BaselineCount int    // reference count for the delta; 0 means default
	Sentinels     []rune // membership checks; nil means DefaultSentinels
}

// SentinelCheck records whether one sentinel character is present.
type SentinelCheck struct {
	Char    rune
	Present bool
}

// Report holds the computed statistics for one document.
type Report struct {
	Unique        int           // unique basic-CJK characters in the document
	BaselineCount int           // reference count the delta is computed against
	Delta         int           // Unique - BaselineCount (signed)
	Histogram     map[int]int   // stroke count -> character count
	Unknown       int           // characters with no resolvable stroke count
	Sentinels     []SentinelCheck
}

// Analyze computes the report for a generated document. Characters are
// deduplicated by code point across the whole document text; classification
// uses the same two-step stroke resolution as the build pipeline, with
// unresolvable characters counted as unknown rather than dropped from the
// report.
func Analyze(doc string, src charset.StrokeSource) Report {
	return AnalyzeWith(doc, src, Options{})
}

// AnalyzeWith is Analyze with explicit options.
func AnalyzeWith(doc string, src charset.StrokeSource, opts Options) Report {
	if opts.BaselineCount == 0 {
		opts.BaselineCount = DefaultBaselineCount
	}
	if opts.Sentinels == nil {
		opts.Sentinels = DefaultSentinels
	}

	unique := make(charset.Set)
	for _, r := range doc {
		if charset.IsCJK(r) {
			unique[r] = struct{}{}
		}
	}

	buckets, unknown := charset.Classify(unique, src)
	hist := make(map[int]int, len(buckets))
	for n, s := range buckets {
		hist[n] = s.Len()
	}

	checks := make([]SentinelCheck, 0, len(opts.Sentinels))
	for _, r := range opts.Sentinels {
		checks = append(checks, SentinelCheck{Char: r, Present: unique.Contains(r)})
	}

	return Report{
		Unique:        unique.Len(),
		BaselineCount: opts.BaselineCount,
		Delta:         unique.Len() - opts.BaselineCount,
		Histogram:     hist,
		Unknown:       len(unknown),
		Sentinels:     checks,
	}
}

// String renders the report as plain text, one fact per line.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unique characters: %d\n", r.Unique)
	fmt.Fprintf(&b, "baseline: %d (delta %+d)\n", r.BaselineCount, r.Delta)

	counts := make([]int, 0, len(r.Histogram))
	for n := range r.Histogram {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(&b, "%3d画  %d\n", n, r.Histogram[n])
	}
	if r.Unknown > 0 {
		fmt.Fprintf(&b, "unknown  %d\n", r.Unknown)
	}
	for _, c := range r.Sentinels {
		state := "missing"
		if c.Present {
			state = "present"
		}
		fmt.Fprintf(&b, "sentinel %c: %s\n", c.Char, state)
	}
	return b.String()
}
