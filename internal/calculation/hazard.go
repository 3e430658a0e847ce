package calculation

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext"

	"github.com/rpgo/buyout-calculator/internal/domain"
)

// HazardModel maps elapsed job-search months to the Beta-PERT cumulative
// probability that the search has concluded.
type HazardModel struct {
	Optimistic  int
	Likely      int
	Pessimistic int
	Alpha       float64
	Beta        float64

	// cumulative[i] is the probability at elapsed month Optimistic+i.
	cumulative []float64
}

// PERTShape derives the Beta shape parameters from three duration estimates.
func PERTShape(optimistic, likely, pessimistic int) (alpha, beta float64) {
	o, l, p := float64(optimistic), float64(likely), float64(pessimistic)
	alpha = 1 + (4*l+o-p)/(p-o)
	beta = 1 + (4*l+p-o)/(p-o)
	return alpha, beta
}

// NewHazardModel tabulates the PERT CDF at whole months from optimistic to pessimistic.
func NewHazardModel(optimistic, likely, pessimistic int) (*HazardModel, error) {
	if optimistic < 0 || likely < 0 || pessimistic < 0 {
		return nil, domain.ConfigErrorf("job search durations cannot be negative (optimistic=%d, likely=%d, pessimistic=%d)",
			optimistic, likely, pessimistic)
	}
	if pessimistic <= optimistic {
		return nil, domain.ConfigErrorf("pessimistic months (%d) must be greater than optimistic months (%d)", pessimistic, optimistic)
	}

	alpha, beta := PERTShape(optimistic, likely, pessimistic)
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("%w: PERT shape alpha=%.4f beta=%.4f must be positive (likely=%d is too small for optimistic=%d, pessimistic=%d)",
			domain.ErrNumericDegeneracy, alpha, beta, likely, optimistic, pessimistic)
	}

	span := pessimistic - optimistic
	cumulative := make([]float64, span+1)
	for i := range cumulative {
		cumulative[i] = betaCDF(float64(i)/float64(span), alpha, beta)
	}

	return &HazardModel{
		Optimistic:  optimistic,
		Likely:      likely,
		Pessimistic: pessimistic,
		Alpha:       alpha,
		Beta:        beta,
		cumulative:  cumulative,
	}, nil
}

// Probability returns the cumulative probability for elapsed search months.
// It is 0 before the optimistic month and saturates at the pessimistic value.
func (h *HazardModel) Probability(elapsed int) float64 {
	if elapsed < h.Optimistic {
		return 0
	}
	idx := elapsed - h.Optimistic
	if idx >= len(h.cumulative) {
		idx = len(h.cumulative) - 1
	}
	return h.cumulative[idx]
}

// Concluded runs one Bernoulli trial against Probability(elapsed). No random
// value is consumed before the optimistic month.
//
// Each call reuses the absolute cumulative value rather than a conditional
// hazard, so repeated calls overstate the chance of finding a job.
func (h *HazardModel) Concluded(elapsed int, rng *rand.Rand) bool {
	if elapsed < h.Optimistic {
		return false
	}
	return rng.Float64() < h.Probability(elapsed)
}

func betaCDF(x, alpha, beta float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathext.RegIncBeta(alpha, beta, x)
}
