// Package sigstats computes the handful of signal statistics the
// ensemble driver needs to scale injected noise: mean and sample
// standard deviation, via a single-pass Welford accumulation.
package sigstats

// StdDev returns the sample standard deviation of x (divides by n-1).
// Returns 0 for len(x) < 2.
func StdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return sqrt(Variance(x))
}

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var mean float64
	for i, v := range x {
		mean += (v - mean) / float64(i+1)
	}
	return mean
}

// Variance returns the sample variance of x (divides by n-1) via
// Welford's online algorithm, matching the numerically-stable
// single-pass approach the teacher uses for higher moments in
// stats/time.
func Variance(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	var mean, m2 float64
	for i, v := range x {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	return m2 / float64(n-1)
}
