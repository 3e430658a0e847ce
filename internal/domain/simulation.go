package domain

import "github.com/shopspring/decimal"

// EmploymentState is the per-option, per-trial employment state.
type EmploymentState int

const (
	// Employed receives the current salary (Option A only).
	Employed EmploymentState = iota
	// Searching receives nothing while looking for a job.
	Searching
	// Reemployed receives the sampled new-job salary after tax.
	Reemployed
)

func (s EmploymentState) String() string {
	switch s {
	case Employed:
		return "employed"
	case Searching:
		return "searching"
	case Reemployed:
		return "reemployed"
	default:
		return "unknown"
	}
}

// SimulationResult is the raw output of a Monte Carlo run. Row i of every
// slice belongs to trial i; trial order carries no statistical meaning.
type SimulationResult struct {
	NPVDifferences    []float64   `json:"npv_differences"` // stay NPV - buyout NPV
	StayNPVs          []float64   `json:"stay_npvs"`
	BuyoutNPVs        []float64   `json:"buyout_npvs"`
	StayTimeline      [][]float64 `json:"stay_timeline"`   // trials x months, Option A
	BuyoutTimeline    [][]float64 `json:"buyout_timeline"` // trials x months, Option B
	NumIterations     int         `json:"num_iterations"`
	TimeHorizonMonths int         `json:"time_horizon_months"`
	Seed              int64       `json:"seed"`
	Workers           int         `json:"workers"`
}

// PercentileRanges represents percentile ranges of the NPV difference.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonthlyPayment is the mean income of each option for one month across trials.
type MonthlyPayment struct {
	Month            int             `json:"month"` // 1-based
	MeanStay         decimal.Decimal `json:"mean_stay"`
	MeanBuyout       decimal.Decimal `json:"mean_buyout"`
	CumulativeStay   decimal.Decimal `json:"cumulative_stay"`
	CumulativeBuyout decimal.Decimal `json:"cumulative_buyout"`
}

// HistogramBin counts NPV differences in [Lower, Upper). The last bin is closed.
type HistogramBin struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
	Count int             `json:"count"`
}

// SimulationSummary holds the statistics a front end displays.
type SimulationSummary struct {
	MeanDifference       decimal.Decimal  `json:"mean_difference"`
	ProbStaySuperior     decimal.Decimal  `json:"prob_stay_superior"`
	ProbBuyoutSuperior   decimal.Decimal  `json:"prob_buyout_superior"`
	MeanStayNPV          decimal.Decimal  `json:"mean_stay_npv"`
	MeanBuyoutNPV        decimal.Decimal  `json:"mean_buyout_npv"`
	DifferencePercentile PercentileRanges `json:"difference_percentiles"`
	MinDifference        decimal.Decimal  `json:"min_difference"`
	MaxDifference        decimal.Decimal  `json:"max_difference"`
	Timeline             []MonthlyPayment `json:"timeline"`
	Histogram            []HistogramBin   `json:"histogram"`
	BreakEven            *BreakEven       `json:"break_even,omitempty"` // nil when the cumulative incomes never cross
}

// BreakEven is the point where cumulative mean income of staying catches up with
// the buyout (or the reverse).
type BreakEven struct {
	Month            int             `json:"month"`             // 1-based month in which the crossover happens
	FractionalMonth  decimal.Decimal `json:"fractional_month"`  // e.g. 14.35: 35% into month 15
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"` // equal for both options at the crossover
	StayOvertakes    bool            `json:"stay_overtakes"`
}

// Report bundles everything an output formatter needs.
type Report struct {
	Parameters ParameterSet      `json:"parameters"`
	Iterations int               `json:"iterations"`
	Seed       int64             `json:"seed"`
	Summary    SimulationSummary `json:"summary"`
	Result     *SimulationResult `json:"result,omitempty"`
}
