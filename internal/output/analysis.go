package output

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

const (
	OptionStay   = "Stay in current job"
	OptionBuyout = "Take the buyout"
)

// Recommendation encapsulates which option the simulated sample favours.
type Recommendation struct {
	Option         string
	MeanDifference decimal.Decimal
	Confidence     decimal.Decimal // share of trials in which the chosen option is strictly better
}

// AnalyzeSummary picks the option with the higher mean NPV. A zero mean
// difference yields an empty Option.
func AnalyzeSummary(s domain.SimulationSummary) Recommendation {
	switch s.MeanDifference.Sign() {
	case 1:
		return Recommendation{Option: OptionStay, MeanDifference: s.MeanDifference, Confidence: s.ProbStaySuperior}
	case -1:
		return Recommendation{Option: OptionBuyout, MeanDifference: s.MeanDifference, Confidence: s.ProbBuyoutSuperior}
	default:
		return Recommendation{MeanDifference: s.MeanDifference}
	}
}
