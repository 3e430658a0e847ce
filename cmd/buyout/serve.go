package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/buyout-calculator/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr          string
		workers       int
		maxIterations int
		timeout       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Long: `serve exposes POST /api/simulate and GET /healthz. The request body carries
either "parameters" (monthly values) or "inputs" (annual values) together with
"iterations", "seed" and "bins". Add ?timelines=true to receive per-trial data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := root.logger(cmd.ErrOrStderr())
			s := server.New(server.NewEngineFactory(workers, logger), logger)
			s.MaxIterations = maxIterations
			s.Timeout = timeout
			return s.ListenAndServe(cmd.Context(), addr)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":8080", "listen address")
	f.IntVar(&workers, "workers", 0, "worker goroutines per simulation (0 uses one per CPU)")
	f.IntVar(&maxIterations, "max-iterations", server.DefaultMaxIterations, "largest trial count a request may ask for")
	f.DurationVar(&timeout, "timeout", server.DefaultTimeout, "simulation time limit per request")
	return cmd
}
