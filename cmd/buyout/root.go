package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/rpgo/buyout-calculator/internal/calculation"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "buyout",
		Short: "Compare staying in a job against taking a buyout",
		Long: `buyout runs a Monte Carlo simulation comparing two options: keep the current
job and risk a layoff, or accept a lump-sum buyout and search for a new job.
It reports the net present value of each option and how often each one wins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSimulateCmd(opts),
		newExampleConfigCmd(),
		newServeCmd(opts),
	)
	return cmd
}

// logger builds the tint-backed logger shared by every subcommand.
func (o *rootOptions) logger(w io.Writer) calculation.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return calculation.NewSlogLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})))
}
