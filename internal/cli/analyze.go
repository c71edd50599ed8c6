package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hanworks/hanset/pkg/analyzer"
	"github.com/hanworks/hanset/pkg/config"
	hanseterr "github.com/hanworks/hanset/pkg/errors"
	"github.com/hanworks/hanset/pkg/strokes"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	configPath    string   // --config
	baselineCount int      // --baseline-count
	sentinels     []string // --sentinel (repeatable)
}

// newAnalyzeCmd creates the analyze command, an independent read-only check
// over a generated charset document. It never writes anything.
func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <document>",
		Short: "Verify statistics and invariants of a generated charset document",
		Long: `Analyze reads a generated charset document and reports: the number of
unique basic-CJK characters, the signed delta against the reference baseline
count, a stroke-count histogram (using the same two-step classification as
build), and the presence of the sentinel characters.

Example:
  hanset analyze charset.txt --baseline-count 3500 --sentinel 的 --sentinel 一`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAnalyze(c, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default hanset.toml if present)")
	cmd.Flags().IntVar(&opts.baselineCount, "baseline-count", 0, "reference count for the delta (overrides config)")
	cmd.Flags().StringArrayVar(&opts.sentinels, "sentinel", nil, "sentinel character to check (repeatable)")

	return cmd
}

func runAnalyze(c *cobra.Command, opts *analyzeOpts, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.baselineCount == 0 {
		opts.baselineCount = cfg.Analyzer.BaselineCount
	}
	sentinels := cfg.Analyzer.SentinelRunes()
	if len(opts.sentinels) > 0 {
		sentinels = sentinels[:0]
		for _, s := range opts.sentinels {
			if rs := []rune(s); len(rs) == 1 {
				sentinels = append(sentinels, rs[0])
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return hanseterr.Wrap(hanseterr.ErrCodeDocumentRead, err, "charset document %s", path)
	}

	table, err := strokes.Load()
	if err != nil {
		return hanseterr.Wrap(hanseterr.ErrCodeInternal, err, "load stroke tables")
	}

	report := analyzer.AnalyzeWith(string(data), table, analyzer.Options{
		BaselineCount: opts.baselineCount,
		Sentinels:     sentinels,
	})
	printReport(report)
	return nil
}
