package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

var breakEvenTolerance = decimal.NewFromFloat(0.01)

// CumulativeBreakEven finds the first crossover of cumulative mean income between
// the two options. Within the crossing month income is assumed to accrue
// linearly. It returns nil when the cumulative incomes never cross.
func CumulativeBreakEven(timeline []domain.MonthlyPayment) *domain.BreakEven {
	cumStay := decimal.Zero
	cumBuyout := decimal.Zero

	for i, m := range timeline {
		prevDiff := cumStay.Sub(cumBuyout)
		cumStay = cumStay.Add(m.MeanStay)
		cumBuyout = cumBuyout.Add(m.MeanBuyout)
		currDiff := cumStay.Sub(cumBuyout)

		// Equality after the first month is a crossover at month end.
		if i > 0 && currDiff.Abs().LessThan(breakEvenTolerance) && !prevDiff.Abs().LessThan(breakEvenTolerance) {
			return &domain.BreakEven{
				Month:            m.Month,
				FractionalMonth:  decimal.NewFromInt(int64(m.Month)),
				CumulativeAmount: cumStay,
				StayOvertakes:    prevDiff.IsNegative(),
			}
		}

		if i > 0 && prevDiff.Mul(currDiff).IsNegative() {
			// diff(t) = prevDiff + t*(currDiff-prevDiff); denom is non-zero on a sign change
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			return &domain.BreakEven{
				Month:            m.Month,
				FractionalMonth:  decimal.NewFromInt(int64(m.Month - 1)).Add(t),
				CumulativeAmount: cumStay.Sub(m.MeanStay).Add(m.MeanStay.Mul(t)),
				StayOvertakes:    prevDiff.IsNegative(),
			}
		}
	}
	return nil
}
