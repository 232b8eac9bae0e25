// Package cli implements the featex command line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/astrolab/featex/internal/logging"
)

const versionString = "featex version 0.1.0"

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:     "featex",
	Short:   "Feature extraction for astronomical light curves",
	Version: versionString,
	Long: `featex computes time-series features used to characterize and
classify astronomical light curves: statistical moments, variability
indices, periodogram based periods and their derived quantities.

Input files are whitespace separated tables of time, magnitude and
error, one observation per row, or MACHO style .tar.bz2 archives
holding an R and a B band.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "",
		"YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log progress to stderr")
}

func newLogger() *logging.SlogLogger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return logging.NewText(level)
}
