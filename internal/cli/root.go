// Package cli implements the domino-detect command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose   bool
	logFormat string
	config    string
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "domino-detect",
		Short:         "Detect domino stones, count their pips and check connections",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.logFormat {
			case "text", "json":
				return nil
			default:
				return fmt.Errorf("unknown log format %q (want text or json)", opts.logFormat)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every stage at debug level")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "params file (.json, .yaml or .yml)")

	root.AddCommand(detectCmd(opts), paramsCmd(opts), versionCmd())
	return root
}

// newLogger returns a structured logger writing to w.
func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
