package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full console report: inputs, assumptions,
// headline figures, percentiles and a month-by-month income table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Parameters
	s := report.Summary

	fmt.Fprintln(&buf, "BUYOUT DECISION ANALYSIS (DETAILED)")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(p) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUTS")
	fmt.Fprintln(&buf, strings.Repeat("=", 45))
	fmt.Fprintf(&buf, "Current monthly salary after tax: %s\n", FormatCurrency(decimal.NewFromFloat(p.MonthlySalaryAfterTax)))
	fmt.Fprintf(&buf, "Lump sum after tax:               %s\n", FormatCurrency(decimal.NewFromFloat(p.LumpSumAfterTax())))
	fmt.Fprintf(&buf, "Expected new-job monthly salary:  %s\n", FormatCurrency(decimal.NewFromFloat(p.ExpectedNewJobMonthlySalary)))
	fmt.Fprintf(&buf, "Time horizon:                     %d months\n", p.TimeHorizonMonths)
	fmt.Fprintf(&buf, "Trials / seed:                    %d / %d\n", report.Iterations, report.Seed)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RESULTS")
	fmt.Fprintln(&buf, strings.Repeat("=", 45))
	fmt.Fprintf(&buf, "Mean NPV Difference (Stay - Buyout): %s\n", FormatCurrency(s.MeanDifference))
	fmt.Fprintf(&buf, "Probability Staying in Current Job is Superior: %s\n", FormatProbability(s.ProbStaySuperior))
	fmt.Fprintf(&buf, "Probability Taking the Buyout is Superior: %s\n", FormatProbability(s.ProbBuyoutSuperior))
	fmt.Fprintf(&buf, "Mean NPV (stay):   %s\n", FormatCurrency(s.MeanStayNPV))
	fmt.Fprintf(&buf, "Mean NPV (buyout): %s\n", FormatCurrency(s.MeanBuyoutNPV))
	fmt.Fprintf(&buf, "Range: %s to %s\n", FormatCurrency(s.MinDifference), FormatCurrency(s.MaxDifference))
	fmt.Fprintln(&buf)

	if be := s.BreakEven; be != nil {
		fmt.Fprintf(&buf, "Cumulative income break-even: month %s at %s (%s catches up)\n",
			be.FractionalMonth.StringFixed(2), FormatCurrency(be.CumulativeAmount), breakEvenLeader(be))
	} else {
		fmt.Fprintln(&buf, "Cumulative income break-even: none within the horizon")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "NPV DIFFERENCE PERCENTILES")
	fmt.Fprintf(&buf, "%-6s %16s\n", "P10", FormatCurrency(s.DifferencePercentile.P10))
	fmt.Fprintf(&buf, "%-6s %16s\n", "P25", FormatCurrency(s.DifferencePercentile.P25))
	fmt.Fprintf(&buf, "%-6s %16s\n", "P50", FormatCurrency(s.DifferencePercentile.P50))
	fmt.Fprintf(&buf, "%-6s %16s\n", "P75", FormatCurrency(s.DifferencePercentile.P75))
	fmt.Fprintf(&buf, "%-6s %16s\n", "P90", FormatCurrency(s.DifferencePercentile.P90))
	fmt.Fprintln(&buf)

	if len(s.Timeline) > 0 {
		fmt.Fprintln(&buf, "EXPECTED MONTHLY INCOME")
		fmt.Fprintf(&buf, "%-6s %14s %14s %16s %16s\n", "Month", "Stay", "Buyout", "Cum. Stay", "Cum. Buyout")
		fmt.Fprintln(&buf, strings.Repeat("-", 70))
		for _, m := range s.Timeline {
			fmt.Fprintf(&buf, "%-6d %14s %14s %16s %16s\n", m.Month,
				FormatCurrency(m.MeanStay), FormatCurrency(m.MeanBuyout),
				FormatCurrency(m.CumulativeStay), FormatCurrency(m.CumulativeBuyout))
		}
		fmt.Fprintln(&buf)
	}

	if rec := AnalyzeSummary(s); rec.Option != "" {
		fmt.Fprintf(&buf, "Recommended: %s (better in %s of trials)\n", rec.Option, FormatProbability(rec.Confidence))
	} else {
		fmt.Fprintln(&buf, "No preference: both options have the same mean NPV")
	}
	return buf.Bytes(), nil
}
