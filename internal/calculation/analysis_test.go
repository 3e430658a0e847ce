package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

func TestAnalyze_HandBuiltResult(t *testing.T) {
	result := &domain.SimulationResult{
		NPVDifferences:    []float64{-100, 0, 100, 300},
		StayNPVs:          []float64{100, 200, 300, 500},
		BuyoutNPVs:        []float64{200, 200, 200, 200},
		StayTimeline:      [][]float64{{10, 20}, {30, 40}, {50, 60}, {70, 80}},
		BuyoutTimeline:    [][]float64{{100, 0}, {100, 0}, {100, 4}, {100, 0}},
		NumIterations:     4,
		TimeHorizonMonths: 2,
	}

	s := Analyze(result, 4)

	if !s.MeanDifference.Equal(decimal.NewFromInt(75)) {
		t.Errorf("MeanDifference = %s, want 75", s.MeanDifference)
	}
	if !s.ProbStaySuperior.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("ProbStaySuperior = %s, want 0.5", s.ProbStaySuperior)
	}
	if !s.ProbBuyoutSuperior.Equal(decimal.NewFromFloat(0.25)) {
		t.Errorf("ProbBuyoutSuperior = %s, want 0.25", s.ProbBuyoutSuperior)
	}
	if !s.MeanStayNPV.Equal(decimal.NewFromInt(275)) || !s.MeanBuyoutNPV.Equal(decimal.NewFromInt(200)) {
		t.Errorf("mean NPVs = %s/%s, want 275/200", s.MeanStayNPV, s.MeanBuyoutNPV)
	}
	if !s.MinDifference.Equal(decimal.NewFromInt(-100)) || !s.MaxDifference.Equal(decimal.NewFromInt(300)) {
		t.Errorf("range = [%s, %s], want [-100, 300]", s.MinDifference, s.MaxDifference)
	}
	if !s.DifferencePercentile.P50.Equal(decimal.NewFromInt(100)) {
		t.Errorf("P50 = %s, want 100", s.DifferencePercentile.P50)
	}

	if len(s.Timeline) != 2 {
		t.Fatalf("timeline length %d, want 2", len(s.Timeline))
	}
	first, second := s.Timeline[0], s.Timeline[1]
	if first.Month != 1 || !first.MeanStay.Equal(decimal.NewFromInt(40)) || !first.MeanBuyout.Equal(decimal.NewFromInt(100)) {
		t.Errorf("month 1 = %+v", first)
	}
	if !second.MeanStay.Equal(decimal.NewFromInt(50)) || !second.CumulativeStay.Equal(decimal.NewFromInt(90)) {
		t.Errorf("month 2 stay = %s cumulative %s, want 50/90", second.MeanStay, second.CumulativeStay)
	}
	if !second.MeanBuyout.Equal(decimal.NewFromInt(1)) || !second.CumulativeBuyout.Equal(decimal.NewFromInt(101)) {
		t.Errorf("month 2 buyout = %s cumulative %s, want 1/101", second.MeanBuyout, second.CumulativeBuyout)
	}

	if len(s.Histogram) != 4 {
		t.Fatalf("histogram bins %d, want 4", len(s.Histogram))
	}
	wantCounts := []int{1, 1, 1, 1}
	for i, bin := range s.Histogram {
		if bin.Count != wantCounts[i] {
			t.Errorf("bin %d count %d, want %d", i, bin.Count, wantCounts[i])
		}
	}
	if !s.Histogram[3].Upper.Equal(decimal.NewFromInt(300)) {
		t.Errorf("last bin upper = %s, want 300", s.Histogram[3].Upper)
	}
	if s.BreakEven != nil {
		t.Errorf("cumulative stay 90 never reaches buyout 101, got break-even %+v", s.BreakEven)
	}
}

func TestAnalyze_ConstantDifferences(t *testing.T) {
	result := &domain.SimulationResult{
		NPVDifferences:    []float64{5, 5, 5},
		StayNPVs:          []float64{5, 5, 5},
		BuyoutNPVs:        []float64{0, 0, 0},
		StayTimeline:      [][]float64{{5}, {5}, {5}},
		BuyoutTimeline:    [][]float64{{0}, {0}, {0}},
		TimeHorizonMonths: 1,
	}
	s := Analyze(result, 0)
	if len(s.Histogram) != 1 || s.Histogram[0].Count != 3 {
		t.Errorf("expected a single bin holding every trial, got %+v", s.Histogram)
	}
	if !s.ProbStaySuperior.Equal(decimal.NewFromInt(1)) || !s.ProbBuyoutSuperior.IsZero() {
		t.Errorf("probabilities = %s/%s, want 1/0", s.ProbStaySuperior, s.ProbBuyoutSuperior)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	s := Analyze(&domain.SimulationResult{}, 10)
	if !s.MeanDifference.IsZero() || s.Timeline != nil || s.Histogram != nil {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestAnalyze_FullRunHistogramCoversAllTrials(t *testing.T) {
	result, err := NewMonteCarloEngine(MonteCarloConfig{NumSimulations: 1000, Seed: 99, Workers: 2}).Run(context.Background(), defaultParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := Analyze(result, 0)

	if len(s.Histogram) != DefaultHistogramBins {
		t.Fatalf("histogram bins %d, want %d", len(s.Histogram), DefaultHistogramBins)
	}
	total := 0
	for _, bin := range s.Histogram {
		total += bin.Count
	}
	if total != 1000 {
		t.Errorf("histogram holds %d trials, want 1000", total)
	}
	sum := s.ProbStaySuperior.Add(s.ProbBuyoutSuperior)
	if sum.GreaterThan(decimal.NewFromInt(1)) {
		t.Errorf("probabilities sum to %s", sum)
	}
	if len(s.Timeline) != defaultParams().TimeHorizonMonths {
		t.Errorf("timeline length %d", len(s.Timeline))
	}
}
