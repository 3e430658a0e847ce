package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/buyout-calculator/internal/calculation"
	"github.com/rpgo/buyout-calculator/internal/config"
	"github.com/rpgo/buyout-calculator/internal/domain"
	"github.com/rpgo/buyout-calculator/internal/output"
)

type simulateOptions struct {
	configPath string
	format     string
	outputDir  string
	iterations int
	seed       int64
	workers    int
	bins       int
	timelines  bool
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the Monte Carlo comparison",
		Example: `  buyout simulate --config my_situation.yaml
  buyout simulate --iterations 50000 --seed 42 --format json
  buyout simulate --format all --output-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (defaults to the example situation)")
	f.StringVarP(&opts.format, "format", "f", "console", fmt.Sprintf("output format %v or \"all\"", output.AvailableFormatterNames()))
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "write reports to timestamped files in this directory instead of stdout")
	f.IntVarP(&opts.iterations, "iterations", "n", 0, "number of trials (overrides the configuration)")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (overrides the configuration; 0 means a time-based seed and cannot be pinned)")
	f.IntVar(&opts.workers, "workers", 0, "worker goroutines (overrides the configuration)")
	f.IntVar(&opts.bins, "bins", calculation.DefaultHistogramBins, "histogram bins")
	f.BoolVar(&opts.timelines, "timelines", false, "include per-trial NPVs and income timelines in the report")
	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *simulateOptions) error {
	logger := root.logger(cmd.ErrOrStderr())
	parser := config.NewInputParser()

	var cfg *domain.Configuration
	if opts.configPath == "" {
		logger.Infof("no --config given, using the example situation")
		cfg = parser.CreateExampleConfiguration()
	} else {
		var err error
		cfg, err = parser.LoadFromFile(opts.configPath)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.Simulation.Iterations = opts.iterations
	}
	if flags.Changed("seed") && opts.seed != 0 {
		cfg.Simulation.Seed = opts.seed
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers = opts.workers
	}
	if opts.bins < 1 {
		return fmt.Errorf("%w: --bins must be at least 1", domain.ErrConfiguration)
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return err
	}

	formatters, err := resolveFormatters(opts.format)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.Bins = opts.bins
	engine.SetLogger(logger)
	report, err := engine.RunConfiguration(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if !opts.timelines && !needsTrialData(formatters) {
		report.Result = nil
	}

	if opts.outputDir == "" {
		return output.GenerateReport(cmd.OutOrStdout(), report, opts.format)
	}
	for _, f := range formatters {
		path, err := output.WriteFormatted(f, report, opts.outputDir)
		if errors.Is(err, output.ErrNoTrialData) {
			logger.Warnf("skipping %s: rerun with --timelines to export per-trial rows", f.Name())
			continue
		}
		if err != nil {
			return fmt.Errorf("%s report: %w", f.Name(), err)
		}
		logger.Infof("wrote %s", path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func resolveFormatters(format string) ([]output.Formatter, error) {
	if output.NormalizeFormatName(format) == "all" {
		var all []output.Formatter
		for _, name := range output.AvailableFormatterNames() {
			all = append(all, output.GetFormatterByName(name))
		}
		return all, nil
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", output.ErrUnsupportedFormat, format, output.AvailableFormatterNames())
	}
	return []output.Formatter{f}, nil
}

// needsTrialData reports whether a single requested formatter exports per-trial rows.
func needsTrialData(formatters []output.Formatter) bool {
	if len(formatters) != 1 {
		return false
	}
	_, ok := formatters[0].(output.CSVDetailedExporter)
	return ok
}
