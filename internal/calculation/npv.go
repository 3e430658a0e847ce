package calculation

import "math"

// NPV discounts monthly amounts at annualRate/12 per month. Month 0 is not discounted.
func NPV(amounts []float64, annualRate float64) float64 {
	monthly := 1 + annualRate/12
	var total float64
	for i, amount := range amounts {
		total += amount / math.Pow(monthly, float64(i))
	}
	return total
}
