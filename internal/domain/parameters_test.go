package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() ParameterSet {
	return ParameterSet{
		MonthlySalaryAfterTax:       5833.33,
		LumpSum:                     75000,
		LumpSumTaxRate:              0.5,
		ExpectedNewJobMonthlySalary: 7500,
		MonthlyTaxRate:              0.3,
		DiscountRate:                0.05,
		TimeHorizonMonths:           24,
		ProbJobLoss:                 0.1 / 12,
		OptimisticMonths:            2,
		LikelyMonths:                9,
		PessimisticMonths:           18,
	}
}

func TestParameterSet_Validate(t *testing.T) {
	require.NoError(t, validParams().Validate())

	testCases := []struct {
		desc   string
		mutate func(*ParameterSet)
		msg    string
	}{
		{"zero salary", func(p *ParameterSet) { p.MonthlySalaryAfterTax = 0 }, "monthly salary after tax must be positive"},
		{"negative lump sum", func(p *ParameterSet) { p.LumpSum = -1 }, "lump sum cannot be negative"},
		{"zero new salary", func(p *ParameterSet) { p.ExpectedNewJobMonthlySalary = 0 }, "expected new job monthly salary must be positive"},
		{"lump sum tax above one", func(p *ParameterSet) { p.LumpSumTaxRate = 1.1 }, "lump sum tax rate"},
		{"negative monthly tax", func(p *ParameterSet) { p.MonthlyTaxRate = -0.1 }, "monthly tax rate"},
		{"discount above one", func(p *ParameterSet) { p.DiscountRate = 2 }, "discount rate"},
		{"probability above one", func(p *ParameterSet) { p.ProbJobLoss = 1.5 }, "job loss probability"},
		{"zero horizon", func(p *ParameterSet) { p.TimeHorizonMonths = 0 }, "time horizon"},
		{"negative duration", func(p *ParameterSet) { p.LikelyMonths = -1 }, "cannot be negative"},
		{"pessimistic equals optimistic", func(p *ParameterSet) { p.PessimisticMonths = 2 }, "must be greater than optimistic"},
		{"NaN rate", func(p *ParameterSet) { p.DiscountRate = math.NaN() }, "finite"},
		{"infinite salary", func(p *ParameterSet) { p.MonthlySalaryAfterTax = math.Inf(1) }, "finite"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParameterSet_BoundaryValuesAreValid(t *testing.T) {
	p := validParams()
	p.LumpSum = 0
	p.LumpSumTaxRate = 1
	p.MonthlyTaxRate = 0
	p.DiscountRate = 0
	p.ProbJobLoss = 1
	p.TimeHorizonMonths = 1
	p.OptimisticMonths = 0
	assert.NoError(t, p.Validate())
}

func TestParameterSet_Income(t *testing.T) {
	p := validParams()
	assert.Equal(t, 37500.0, p.LumpSumAfterTax())
	assert.InDelta(t, 5250.0, p.NewJobIncome(7500), 1e-9)
	assert.Equal(t, 0.0, p.NewJobIncome(0))
}

func TestInputs_ParameterSet(t *testing.T) {
	in := Inputs{
		AnnualSalaryBeforeTax:      120000,
		MonthlyTaxRate:             0.25,
		AnnualJobLossProbability:   0.12,
		LumpSum:                    50000,
		LumpSumTaxRate:             0.4,
		OptimisticMonths:           1,
		LikelyMonths:               3,
		PessimisticMonths:          6,
		ExpectedNewJobAnnualSalary: 96000,
		DiscountRate:               0.04,
		TimeHorizonMonths:          36,
	}
	p := in.ParameterSet()
	assert.Equal(t, 7500.0, p.MonthlySalaryAfterTax)
	assert.Equal(t, 8000.0, p.ExpectedNewJobMonthlySalary)
	assert.InDelta(t, 0.01, p.ProbJobLoss, 1e-12)
	assert.Equal(t, 0.25, p.MonthlyTaxRate)
	assert.Equal(t, 0.04, p.DiscountRate)
	assert.Equal(t, 36, p.TimeHorizonMonths)
	assert.Equal(t, []int{1, 3, 6}, []int{p.OptimisticMonths, p.LikelyMonths, p.PessimisticMonths})
}

func TestConfiguration_ResolveParameters(t *testing.T) {
	cfg := &Configuration{Inputs: Inputs{AnnualSalaryBeforeTax: 12000, ExpectedNewJobAnnualSalary: 24000}}
	assert.Equal(t, 1000.0, cfg.ResolveParameters().MonthlySalaryAfterTax)

	explicit := validParams()
	cfg.Parameters = &explicit
	assert.Equal(t, explicit, cfg.ResolveParameters())
}

func TestConfigErrorf(t *testing.T) {
	err := ConfigErrorf("bad value %d", 3)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "configuration error: bad value 3", err.Error())

	assert.ErrorIs(t, ErrNumericDegeneracy, ErrConfiguration)
}

func TestEmploymentState_String(t *testing.T) {
	assert.Equal(t, "employed", Employed.String())
	assert.Equal(t, "searching", Searching.String())
	assert.Equal(t, "reemployed", Reemployed.String())
	assert.Equal(t, "unknown", EmploymentState(42).String())
}
