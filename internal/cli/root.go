package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hanworks/hanset/pkg/buildinfo"
)

// Execute runs the hanset CLI and returns an error if any command fails.
//
// The root command wires the build and analyze subcommands, attaches a
// charmbracelet logger to the context (info level by default, debug with
// --verbose), and executes the command tree.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "hanset",
		Short: "hanset builds a reproducible Chinese charset for font subsetting",
		Long: `hanset builds a working set of single Chinese characters by unioning a
baseline document with heuristic, include-file, and font-derived candidates,
classifying every character by stroke count, and truncating to a target size.

The companion analyze command verifies properties of a generated document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newAnalyzeCmd())

	return root.ExecuteContext(ctx)
}
