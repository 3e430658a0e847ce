package calculation

import (
	"math/rand/v2"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// defaultParams mirrors the interactive tool's default slider values.
func defaultParams() domain.ParameterSet {
	return domain.ParameterSet{
		MonthlySalaryAfterTax:       100000.0 / 12 * 0.7,
		LumpSum:                     75000,
		LumpSumTaxRate:              0.5,
		ExpectedNewJobMonthlySalary: 90000.0 / 12,
		MonthlyTaxRate:              0.3,
		DiscountRate:                0.05,
		TimeHorizonMonths:           24,
		ProbJobLoss:                 0.1 / 12,
		OptimisticMonths:            2,
		LikelyMonths:                9,
		PessimisticMonths:           18,
	}
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 42))
}
