package calculation

import (
	"math/rand/v2"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// TrialState is the complete outcome of one trial.
type TrialState struct {
	Stay   []float64 // Option A monthly income
	Buyout []float64 // Option B monthly income

	StayState   domain.EmploymentState
	BuyoutState domain.EmploymentState

	JobLossMonth     int // -1 when the current job was kept for the whole horizon
	StayFoundMonth   int // -1 when no new job was found
	BuyoutFoundMonth int
	NewJobSalary     float64
}

// ScenarioSimulator produces the two income sequences of a trial.
// It is safe for concurrent use as long as each goroutine passes its own rng.
type ScenarioSimulator struct {
	params domain.ParameterSet
	hazard *HazardModel
}

// NewScenarioSimulator binds a validated parameter set to its hazard model.
func NewScenarioSimulator(params domain.ParameterSet, hazard *HazardModel) *ScenarioSimulator {
	return &ScenarioSimulator{params: params, hazard: hazard}
}

// Simulate returns the stay and buyout income sequences for one trial.
func (s *ScenarioSimulator) Simulate(rng *rand.Rand) (stay, buyout []float64) {
	trial := s.SimulateTrial(rng)
	return trial.Stay, trial.Buyout
}

// SimulateTrial walks both options month by month.
//
// Draw order per trial: one normal for the new-job salary, then for every month
// at most one uniform for Option A followed by at most one for Option B.
func (s *ScenarioSimulator) SimulateTrial(rng *rand.Rand) TrialState {
	p := s.params
	months := p.TimeHorizonMonths

	salary := p.ExpectedNewJobMonthlySalary + domain.NewJobSalaryStdDev*rng.NormFloat64()
	if salary < 0 {
		salary = 0
	}
	newJobIncome := p.NewJobIncome(salary)

	trial := TrialState{
		Stay:             make([]float64, months),
		Buyout:           make([]float64, months),
		StayState:        domain.Employed,
		BuyoutState:      domain.Searching,
		JobLossMonth:     -1,
		StayFoundMonth:   -1,
		BuyoutFoundMonth: -1,
		NewJobSalary:     salary,
	}
	for m := range trial.Stay {
		trial.Stay[m] = p.MonthlySalaryAfterTax
	}
	trial.Buyout[0] = p.LumpSumAfterTax()

	for month := 0; month < months; month++ {
		switch trial.StayState {
		case domain.Employed:
			if rng.Float64() < p.ProbJobLoss {
				trial.StayState = domain.Searching
				trial.JobLossMonth = month
				clear(trial.Stay[month:])
			}
		case domain.Searching:
			if s.hazard.Concluded(month-trial.JobLossMonth, rng) {
				trial.StayState = domain.Reemployed
				trial.StayFoundMonth = month
			}
		}
		if trial.StayState == domain.Reemployed {
			trial.Stay[month] = newJobIncome
		}

		if trial.BuyoutState == domain.Searching && s.hazard.Concluded(month, rng) {
			trial.BuyoutState = domain.Reemployed
			trial.BuyoutFoundMonth = month
		}
		if trial.BuyoutState == domain.Reemployed {
			trial.Buyout[month] = newJobIncome
		}
	}

	return trial
}
