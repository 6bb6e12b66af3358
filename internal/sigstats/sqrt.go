//go:build !fastmath

package sigstats

import "math"

// sqrt computes sqrt(x) using standard library math.
func sqrt(x float64) float64 {
	return math.Sqrt(x)
}
