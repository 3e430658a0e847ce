package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// CalculationEngine orchestrates a complete run: configuration in, report out.
type CalculationEngine struct {
	Bins   int // histogram bins; 0 uses DefaultHistogramBins
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Bins: DefaultHistogramBins, Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunConfiguration simulates the configured situation and summarizes it. The
// returned report always carries the raw result; callers that only want the
// summary can drop it.
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	params := config.ResolveParameters()

	mc := NewMonteCarloEngine(MonteCarloConfig{
		NumSimulations: config.Simulation.Iterations,
		Seed:           config.Simulation.Seed,
		Workers:        config.Simulation.Workers,
		Logger:         ce.Logger,
	})
	result, err := mc.Run(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	summary := Analyze(result, ce.Bins)
	if be := summary.BreakEven; be != nil {
		ce.Logger.Debugf("cumulative break-even in month %s", be.FractionalMonth.StringFixed(2))
	}
	return &domain.Report{
		Parameters: params,
		Iterations: result.NumIterations,
		Seed:       result.Seed,
		Summary:    summary,
		Result:     result,
	}, nil
}
