package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanworks/hanset/pkg/config"
	hanseterr "github.com/hanworks/hanset/pkg/errors"
	"github.com/hanworks/hanset/pkg/pipeline"
	"github.com/hanworks/hanset/pkg/strokes"
)

// buildOpts holds the command-line flags for the build command. Unset flags
// fall back to the config file, which falls back to built-in defaults.
type buildOpts struct {
	configPath string   // --config
	limit      int      // --limit
	output     string   // --output
	preview    bool     // --preview
	fontDir    string   // --font-dir
	includes   []string // --include (repeatable)
}

// newBuildCmd creates the build command, which runs the full pipeline:
// parse baseline, aggregate candidates, classify by stroke count, truncate
// to the limit, and write (or preview) the output document.
func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <baseline>",
		Short: "Build a charset document from a baseline and candidate sources",
		Long: `Build reads the baseline charset document, unions it with the embedded
candidate pool, any --include list files, and characters recovered from fonts
under --font-dir, classifies everything by stroke count, truncates to --limit,
and writes the result in the baseline document's layout.

With --preview the result is not written; the stroke distribution is printed
instead.

Examples:
  hanset build charset.txt -l 3500 -o charset.txt
  hanset build charset.txt --include extra.txt --font-dir ./fonts
  hanset build charset.txt --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default hanset.toml if present)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", -1, "target charset size (overrides config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output document path (overrides config)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "skip writing, print the distribution only")
	cmd.Flags().StringVar(&opts.fontDir, "font-dir", "", "directory scanned recursively for fonts")
	cmd.Flags().StringArrayVar(&opts.includes, "include", nil, "extra character list file (repeatable)")

	return cmd
}

// runBuild resolves config, executes the pipeline, and reports the outcome.
func runBuild(c *cobra.Command, opts *buildOpts, baseline string) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.limit < 0 {
		opts.limit = cfg.Limit
	}
	if opts.output == "" {
		opts.output = cfg.Output
	}
	if opts.fontDir == "" {
		opts.fontDir = cfg.FontDir
	}
	if len(opts.includes) == 0 {
		opts.includes = cfg.Include
	}

	table, err := strokes.Load()
	if err != nil {
		return hanseterr.Wrap(hanseterr.ErrCodeInternal, err, "load stroke tables")
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(table, logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		BaselinePath: baseline,
		OutputPath:   opts.output,
		Limit:        opts.limit,
		FontDir:      opts.fontDir,
		Includes:     opts.includes,
		Preview:      opts.preview,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Selected %d of %d candidate characters", result.Selected, result.UnionSize))

	if len(result.Unknown) > 0 {
		printWarning("%d characters had no resolvable stroke count", len(result.Unknown))
	}
	if opts.preview {
		printDistribution(bucketCounts(result.Buckets), len(result.Unknown))
		return nil
	}

	printSuccess("Charset written")
	printFile(opts.output)
	return nil
}
