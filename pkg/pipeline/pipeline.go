// Package pipeline orchestrates one complete charset build:
// load → aggregate → classify → select → format → write.
//
// The run is synchronous and single-threaded. Each run is self-contained:
// identical inputs (baseline document, heuristic pool, include files, font
// set, limit) always produce byte-identical output. Per-font and per-include
// failures are logged and skipped; only an unreadable baseline or an
// unwritable output path aborts the run.
//
// Usage:
//
//	table, _ := strokes.Load()
//	runner := pipeline.NewRunner(table, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    BaselinePath: "charset.txt",
//	    OutputPath:   "charset.txt",
//	    Limit:        3500,
//	})
package pipeline

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hanworks/hanset/pkg/charset"
	hanseterr "github.com/hanworks/hanset/pkg/errors"
	"github.com/hanworks/hanset/pkg/fontscan"
)

// Options configures one build run.
type Options struct {
	BaselinePath string   // baseline document (required)
	OutputPath   string   // output document; ignored when Preview is set
	Limit        int      // target charset size; must be >= 0
	FontDir      string   // directory scanned recursively for fonts; empty disables
	Includes     []string // extra character list files
	Preview      bool     // compute only, skip writing
}

// Result carries the outcome of one build run.
type Result struct {
	Document     string         // rendered output document
	Buckets      charset.Buckets // final buckets after truncation
	Unknown      []rune          // characters with no resolvable stroke count
	BaselineSize int             // characters parsed from the baseline
	UnionSize    int             // cardinality after aggregation
	Selected     int             // characters kept after truncation
	Written      bool            // whether OutputPath was written
}

// Runner executes build runs against a fixed stroke source.
type Runner struct {
	strokes charset.StrokeSource
	logger  *log.Logger
}

// NewRunner creates a pipeline runner. logger may be nil, in which case the
// default logger is used.
func NewRunner(src charset.StrokeSource, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{strokes: src, logger: logger}
}

// Execute runs the full pipeline once. The context is accepted for interface
// symmetry with callers; the pipeline itself has no cancellation points —
// every I/O attempt happens exactly once and is never retried.
func (r *Runner) Execute(_ context.Context, opts Options) (*Result, error) {
	logger := r.logger.With("run", uuid.NewString()[:8])

	if opts.Limit < 0 {
		return nil, hanseterr.New(hanseterr.ErrCodeInvalidLimit, "limit must be >= 0, got %d", opts.Limit)
	}

	raw, err := os.ReadFile(opts.BaselinePath)
	if err != nil {
		return nil, hanseterr.Wrap(hanseterr.ErrCodeBaselineRead, err, "baseline document %s", opts.BaselinePath)
	}
	original := string(raw)

	baseline := charset.ParseDocument(original)
	logger.Debug("baseline parsed", "chars", baseline.Len())

	pool := charset.HeuristicPool()
	includes := charset.AggregateIncludes(opts.Includes, logger.Warnf)
	fonts := fontscan.Scan(opts.FontDir, logger.Warnf)

	union := charset.UnionAll(baseline, pool, includes, fonts)
	logger.Debug("candidates aggregated",
		"baseline", baseline.Len(),
		"pool", pool.Len(),
		"includes", includes.Len(),
		"fonts", fonts.Len(),
		"union", union.Len())

	buckets, unknown := charset.Classify(union, r.strokes)
	if len(unknown) > 0 {
		logger.Warn("characters with unknown stroke count excluded", "count", len(unknown))
	}

	col := charset.NewCollator()
	buckets = charset.Truncate(buckets, opts.Limit, col)
	doc := charset.Render(buckets, original, col)

	result := &Result{
		Document:     doc,
		Buckets:      buckets,
		Unknown:      unknown,
		BaselineSize: baseline.Len(),
		UnionSize:    union.Len(),
		Selected:     buckets.Total(),
	}

	if opts.Preview {
		logger.Debug("preview run, skipping write")
		return result, nil
	}

	if err := os.WriteFile(opts.OutputPath, []byte(doc), 0o644); err != nil {
		return nil, hanseterr.Wrap(hanseterr.ErrCodeOutputWrite, err, "output document %s", opts.OutputPath)
	}
	result.Written = true
	logger.Debug("output written", "path", opts.OutputPath, "chars", result.Selected)
	return result, nil
}
