package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// ConsoleFormatter renders the headline statistics as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	s := report.Summary
	p := report.Parameters

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BUYOUT DECISION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Trials: %d  Seed: %d  Horizon: %d months\n", report.Iterations, report.Seed, p.TimeHorizonMonths)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Mean NPV Difference (Stay - Buyout): %s\n", FormatCurrency(s.MeanDifference))
	fmt.Fprintf(&buf, "Probability Staying in Current Job is Superior: %s\n", FormatProbability(s.ProbStaySuperior))
	fmt.Fprintf(&buf, "Probability Taking the Buyout is Superior: %s\n", FormatProbability(s.ProbBuyoutSuperior))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Mean NPV: Stay=%s Buyout=%s\n", FormatCurrency(s.MeanStayNPV), FormatCurrency(s.MeanBuyoutNPV))
	fmt.Fprintf(&buf, "Difference percentiles: P10=%s P25=%s P50=%s P75=%s P90=%s\n",
		FormatCurrency(s.DifferencePercentile.P10),
		FormatCurrency(s.DifferencePercentile.P25),
		FormatCurrency(s.DifferencePercentile.P50),
		FormatCurrency(s.DifferencePercentile.P75),
		FormatCurrency(s.DifferencePercentile.P90),
	)
	if n := len(s.Timeline); n > 0 {
		last := s.Timeline[n-1]
		fmt.Fprintf(&buf, "Expected cumulative payments after %d months: Stay=%s Buyout=%s\n",
			last.Month, FormatCurrency(last.CumulativeStay), FormatCurrency(last.CumulativeBuyout))
	}

	if be := s.BreakEven; be != nil {
		fmt.Fprintf(&buf, "Cumulative income break-even: month %s (%s catches up)\n", be.FractionalMonth.StringFixed(1), breakEvenLeader(be))
	}

	if rec := AnalyzeSummary(s); rec.Option != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (better in %s of trials)\n", rec.Option, FormatProbability(rec.Confidence))
	}
	return buf.Bytes(), nil
}

func breakEvenLeader(be *domain.BreakEven) string {
	if be.StayOvertakes {
		return "staying"
	}
	return "the buyout"
}
