package output

import (
	"fmt"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// GenerateAssumptions lists the modelling assumptions behind a run, rendered in
// the HTML report and the verbose console view.
func GenerateAssumptions(p domain.ParameterSet) []string {
	return []string{
		fmt.Sprintf("Monthly probability of losing the current job: %.2f%%", p.ProbJobLoss*100),
		fmt.Sprintf("Job search duration (months): optimistic %d, most likely %d, pessimistic %d (Beta-PERT)",
			p.OptimisticMonths, p.LikelyMonths, p.PessimisticMonths),
		fmt.Sprintf("New-job monthly salary ~ Normal(%s, %s), taxed at %.1f%%",
			FormatCurrency(decimalFromFloat(p.ExpectedNewJobMonthlySalary)),
			FormatCurrency(decimalFromFloat(domain.NewJobSalaryStdDev)),
			p.MonthlyTaxRate*100),
		fmt.Sprintf("Lump sum taxed at %.1f%% and paid in the first month", p.LumpSumTaxRate*100),
		fmt.Sprintf("Annual discount rate: %.2f%%, compounded monthly", p.DiscountRate*100),
		"A lost or declined job pays nothing until a new job is found",
	}
}
