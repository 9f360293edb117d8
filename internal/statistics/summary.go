package statistics

import "math"

// Summary describes a sample of per-run measurements.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	// Lower and Upper bound the 95% confidence interval of the mean.
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Summarize computes the mean, sample standard deviation and a normal
// approximation 95% interval for the mean. Fewer than two values give a
// degenerate interval at the mean.
func Summarize(values []float64) Summary {
	s := Summary{N: len(values)}
	if s.N == 0 {
		return s
	}

	s.Min, s.Max = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(s.N)
	s.Lower, s.Upper = s.Mean, s.Mean
	if s.N < 2 {
		return s
	}

	sumSq := 0.0
	for _, v := range values {
		d := v - s.Mean
		sumSq += d * d
	}
	// Bessel's correction
	s.StdDev = math.Sqrt(sumSq / float64(s.N-1))
	margin := z95 * s.StdDev / math.Sqrt(float64(s.N))
	s.Lower = s.Mean - margin
	s.Upper = s.Mean + margin
	return s
}
