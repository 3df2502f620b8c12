// Package main provides the entry point for the streamstat CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/streamstat/cmd/streamstat/commands"
	"github.com/Sumatoshi-tech/streamstat/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "streamstat",
		Short: "Streamstat - descriptive statistics over number streams",
		Long: `Streamstat computes descriptive statistics over numeric input.

Commands:
  describe  Summarize a number stream (mean, spread, shape, median)
  zscore    Standardize a number stream against its mean and stddev
  plot      Render a histogram of the distribution as HTML`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			commands.ConfigureLogging(verbose, quiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewZScoreCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "streamstat %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
