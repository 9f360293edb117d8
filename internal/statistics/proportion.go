package statistics

import "math"

// z95 is the two-sided 95% quantile of the standard normal distribution.
const z95 = 1.96

// Proportion is an observed success rate with a 95% confidence interval
// from the normal approximation, clamped to [0, 1].
type Proportion struct {
	Successes int     `json:"successes"`
	Trials    int     `json:"trials"`
	Estimate  float64 `json:"estimate"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
}

// NewProportion estimates successes/trials. With no trials every field but
// Successes is zero.
func NewProportion(successes, trials int) Proportion {
	p := Proportion{Successes: successes, Trials: trials}
	if trials <= 0 {
		return p
	}

	p.Estimate = float64(successes) / float64(trials)
	margin := z95 * math.Sqrt(p.Estimate*(1-p.Estimate)/float64(trials))
	p.Lower = clamp01(p.Estimate - margin)
	p.Upper = clamp01(p.Estimate + margin)
	return p
}

// Contains reports whether x falls inside the interval.
func (p Proportion) Contains(x float64) bool {
	return x >= p.Lower && x <= p.Upper
}

func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}
