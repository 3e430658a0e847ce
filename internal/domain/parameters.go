package domain

import (
	"math"

	"github.com/rpgo/buyout-calculator/pkg/decimal"
)

// NewJobSalaryStdDev is the standard deviation of the sampled new-job monthly salary.
const NewJobSalaryStdDev = 2000.0

// DefaultIterations is the trial count used when none is configured.
const DefaultIterations = 10000

// ParameterSet holds the already-converted monthly inputs of one simulation run.
// It is read concurrently by every trial and must not be mutated during a run.
type ParameterSet struct {
	MonthlySalaryAfterTax       float64 `yaml:"monthly_salary_after_tax" json:"monthly_salary_after_tax"`
	LumpSum                     float64 `yaml:"lump_sum" json:"lump_sum"`
	LumpSumTaxRate              float64 `yaml:"lump_sum_tax_rate" json:"lump_sum_tax_rate"`
	ExpectedNewJobMonthlySalary float64 `yaml:"expected_new_job_monthly_salary" json:"expected_new_job_monthly_salary"`
	MonthlyTaxRate              float64 `yaml:"monthly_tax_rate_option1" json:"monthly_tax_rate_option1"`
	DiscountRate                float64 `yaml:"discount_rate" json:"discount_rate"` // annual
	TimeHorizonMonths           int     `yaml:"time_horizon_months" json:"time_horizon_months"`
	ProbJobLoss                 float64 `yaml:"prob_job_loss" json:"prob_job_loss"` // monthly
	OptimisticMonths            int     `yaml:"optimistic_months" json:"optimistic_months"`
	LikelyMonths                int     `yaml:"likely_months" json:"likely_months"`
	PessimisticMonths           int     `yaml:"pessimistic_months" json:"pessimistic_months"`
}

// LumpSumAfterTax is the Option B payment received in month 0.
func (p ParameterSet) LumpSumAfterTax() float64 {
	return p.LumpSum * (1 - p.LumpSumTaxRate)
}

// NewJobIncome converts a sampled gross monthly salary into monthly take-home pay.
func (p ParameterSet) NewJobIncome(salary float64) float64 {
	return salary * (1 - p.MonthlyTaxRate)
}

// Validate checks ranges that do not depend on the hazard model. The PERT
// shape itself is checked when the hazard model is built.
func (p ParameterSet) Validate() error {
	if !finite(p.MonthlySalaryAfterTax, p.LumpSum, p.LumpSumTaxRate, p.ExpectedNewJobMonthlySalary, p.MonthlyTaxRate, p.DiscountRate, p.ProbJobLoss) {
		return ConfigErrorf("monetary amounts and rates must be finite numbers")
	}
	if p.MonthlySalaryAfterTax <= 0 {
		return ConfigErrorf("monthly salary after tax must be positive")
	}
	if p.LumpSum < 0 {
		return ConfigErrorf("lump sum cannot be negative")
	}
	if p.ExpectedNewJobMonthlySalary <= 0 {
		return ConfigErrorf("expected new job monthly salary must be positive")
	}
	if !unitInterval(p.LumpSumTaxRate) {
		return ConfigErrorf("lump sum tax rate must be between 0 and 1, got %v", p.LumpSumTaxRate)
	}
	if !unitInterval(p.MonthlyTaxRate) {
		return ConfigErrorf("monthly tax rate must be between 0 and 1, got %v", p.MonthlyTaxRate)
	}
	if !unitInterval(p.DiscountRate) {
		return ConfigErrorf("discount rate must be between 0 and 1, got %v", p.DiscountRate)
	}
	if !unitInterval(p.ProbJobLoss) {
		return ConfigErrorf("monthly job loss probability must be between 0 and 1, got %v", p.ProbJobLoss)
	}
	if p.TimeHorizonMonths < 1 {
		return ConfigErrorf("time horizon must be at least 1 month, got %d", p.TimeHorizonMonths)
	}
	if p.OptimisticMonths < 0 || p.LikelyMonths < 0 || p.PessimisticMonths < 0 {
		return ConfigErrorf("job search durations cannot be negative")
	}
	if p.PessimisticMonths <= p.OptimisticMonths {
		return ConfigErrorf("pessimistic months (%d) must be greater than optimistic months (%d)", p.PessimisticMonths, p.OptimisticMonths)
	}
	return nil
}

// Inputs are the user-facing figures collected by a front end. They are
// converted to a ParameterSet before simulation.
type Inputs struct {
	AnnualSalaryBeforeTax      float64 `yaml:"annual_salary_before_tax" json:"annual_salary_before_tax"`
	MonthlyTaxRate             float64 `yaml:"monthly_tax_rate" json:"monthly_tax_rate"`
	AnnualJobLossProbability   float64 `yaml:"annual_job_loss_probability" json:"annual_job_loss_probability"`
	LumpSum                    float64 `yaml:"lump_sum" json:"lump_sum"`
	LumpSumTaxRate             float64 `yaml:"lump_sum_tax_rate" json:"lump_sum_tax_rate"`
	OptimisticMonths           int     `yaml:"optimistic_months" json:"optimistic_months"`
	LikelyMonths               int     `yaml:"likely_months" json:"likely_months"`
	PessimisticMonths          int     `yaml:"pessimistic_months" json:"pessimistic_months"`
	ExpectedNewJobAnnualSalary float64 `yaml:"expected_new_job_annual_salary" json:"expected_new_job_annual_salary"`
	DiscountRate               float64 `yaml:"discount_rate" json:"discount_rate"`
	TimeHorizonMonths          int     `yaml:"time_horizon_months" json:"time_horizon_months"`
}

// ParameterSet converts annual, pre-tax figures into the monthly values the engine uses.
func (in Inputs) ParameterSet() ParameterSet {
	return ParameterSet{
		MonthlySalaryAfterTax:       decimal.NewMoney(in.AnnualSalaryBeforeTax).Monthly().ApplyTaxRate(in.MonthlyTaxRate).Float64(),
		LumpSum:                     in.LumpSum,
		LumpSumTaxRate:              in.LumpSumTaxRate,
		ExpectedNewJobMonthlySalary: decimal.NewMoney(in.ExpectedNewJobAnnualSalary).Monthly().Float64(),
		MonthlyTaxRate:              in.MonthlyTaxRate,
		DiscountRate:                in.DiscountRate,
		TimeHorizonMonths:           in.TimeHorizonMonths,
		ProbJobLoss:                 in.AnnualJobLossProbability / 12,
		OptimisticMonths:            in.OptimisticMonths,
		LikelyMonths:                in.LikelyMonths,
		PessimisticMonths:           in.PessimisticMonths,
	}
}

// SimulationSettings controls the Monte Carlo run itself. A Seed of 0 is not a
// fixed seed: it asks for a time-based one, so 0 itself can never be replayed.
// The seed actually used is reported on the result.
type SimulationSettings struct {
	Iterations int   `yaml:"iterations" json:"iterations"`
	Seed       int64 `yaml:"seed" json:"seed"`       // 0 picks a time-based seed
	Workers    int   `yaml:"workers" json:"workers"` // 0 uses one worker per CPU
}

// Configuration is the on-disk input file.
type Configuration struct {
	Inputs     Inputs             `yaml:"inputs" json:"inputs"`
	Parameters *ParameterSet      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
}

// ResolveParameters returns the explicit parameters block when present,
// otherwise the converted inputs.
func (c *Configuration) ResolveParameters() ParameterSet {
	if c.Parameters != nil {
		return *c.Parameters
	}
	return c.Inputs.ParameterSet()
}

func unitInterval(v float64) bool { return v >= 0 && v <= 1 }

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
