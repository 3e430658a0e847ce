package calculation

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// DefaultHistogramBins matches the histogram resolution of the interactive tool.
const DefaultHistogramBins = 50

// Analyze derives the headline statistics, the mean payment timeline and a
// histogram of NPV differences from a finished run.
func Analyze(result *domain.SimulationResult, bins int) domain.SimulationSummary {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	n := len(result.NPVDifferences)
	if n == 0 {
		return domain.SimulationSummary{}
	}

	var stayWins, buyoutWins int
	for _, d := range result.NPVDifferences {
		switch {
		case d > 0:
			stayWins++
		case d < 0:
			buyoutWins++
		}
	}

	sorted := slices.Clone(result.NPVDifferences)
	slices.Sort(sorted)

	total := decimal.NewFromInt(int64(n))
	timeline := paymentTimeline(result)
	return domain.SimulationSummary{
		MeanDifference:     decimal.NewFromFloat(mean(result.NPVDifferences)),
		ProbStaySuperior:   decimal.NewFromInt(int64(stayWins)).Div(total),
		ProbBuyoutSuperior: decimal.NewFromInt(int64(buyoutWins)).Div(total),
		MeanStayNPV:        decimal.NewFromFloat(mean(result.StayNPVs)),
		MeanBuyoutNPV:      decimal.NewFromFloat(mean(result.BuyoutNPVs)),
		DifferencePercentile: domain.PercentileRanges{
			P10: decimal.NewFromFloat(sorted[n/10]),
			P25: decimal.NewFromFloat(sorted[n/4]),
			P50: decimal.NewFromFloat(sorted[n/2]),
			P75: decimal.NewFromFloat(sorted[3*n/4]),
			P90: decimal.NewFromFloat(sorted[9*n/10]),
		},
		MinDifference: decimal.NewFromFloat(sorted[0]),
		MaxDifference: decimal.NewFromFloat(sorted[n-1]),
		Timeline:      timeline,
		Histogram:     histogram(sorted, bins),
		BreakEven:     CumulativeBreakEven(timeline),
	}
}

// paymentTimeline averages each month across trials and accumulates the means.
func paymentTimeline(result *domain.SimulationResult) []domain.MonthlyPayment {
	months := result.TimeHorizonMonths
	trials := len(result.StayTimeline)
	if months == 0 || trials == 0 {
		return nil
	}

	timeline := make([]domain.MonthlyPayment, months)
	var cumStay, cumBuyout float64
	for m := 0; m < months; m++ {
		var stay, buyout float64
		for t := 0; t < trials; t++ {
			stay += result.StayTimeline[t][m]
			buyout += result.BuyoutTimeline[t][m]
		}
		stay /= float64(trials)
		buyout /= float64(trials)
		cumStay += stay
		cumBuyout += buyout

		timeline[m] = domain.MonthlyPayment{
			Month:            m + 1,
			MeanStay:         decimal.NewFromFloat(stay),
			MeanBuyout:       decimal.NewFromFloat(buyout),
			CumulativeStay:   decimal.NewFromFloat(cumStay),
			CumulativeBuyout: decimal.NewFromFloat(cumBuyout),
		}
	}
	return timeline
}

// histogram splits [min, max] of sorted values into equal-width bins.
func histogram(sorted []float64, bins int) []domain.HistogramBin {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []domain.HistogramBin{{
			Lower: decimal.NewFromFloat(lo),
			Upper: decimal.NewFromFloat(hi),
			Count: len(sorted),
		}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]domain.HistogramBin, bins)
	for i := range out {
		out[i].Lower = decimal.NewFromFloat(lo + float64(i)*width)
		out[i].Upper = decimal.NewFromFloat(lo + float64(i+1)*width)
	}
	out[bins-1].Upper = decimal.NewFromFloat(hi)

	for _, v := range sorted {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
