package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

func TestCalculationEngine_RunConfiguration(t *testing.T) {
	params := defaultParams()
	cfg := &domain.Configuration{
		Parameters: &params,
		Simulation: domain.SimulationSettings{Iterations: 200, Seed: 17, Workers: 2},
	}

	ce := NewCalculationEngine()
	ce.Bins = 8
	report, err := ce.RunConfiguration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Iterations != 200 || report.Seed != 17 {
		t.Fatalf("report iterations/seed = %d/%d, want 200/17", report.Iterations, report.Seed)
	}
	if report.Parameters != params {
		t.Fatalf("report parameters differ from configuration")
	}
	if len(report.Summary.Histogram) != 8 {
		t.Fatalf("histogram bins %d, want 8", len(report.Summary.Histogram))
	}
	if report.Result == nil || len(report.Result.NPVDifferences) != 200 {
		t.Fatalf("expected raw result with 200 trials")
	}
}

func TestCalculationEngine_PropagatesConfigurationErrors(t *testing.T) {
	params := defaultParams()
	params.LikelyMonths = 0
	params.OptimisticMonths = 0
	cfg := &domain.Configuration{Parameters: &params, Simulation: domain.SimulationSettings{Iterations: 10, Seed: 1}}

	ce := NewCalculationEngine()
	ce.SetLogger(nil)
	_, err := ce.RunConfiguration(context.Background(), cfg)
	if !errors.Is(err, domain.ErrNumericDegeneracy) {
		t.Fatalf("expected ErrNumericDegeneracy, got %v", err)
	}
}
