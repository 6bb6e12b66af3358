//go:build fastmath

package sigstats

import approx "github.com/meko-christian/algo-approx"

// sqrt computes sqrt(x) using a fast approximation. Noise-sigma scaling
// happens once per EEMD call and once per member and mode in CEEMDAN, not
// in the sift inner loop, so
// the accuracy/speed tradeoff here is the same one the teacher accepts in
// dsp/effects/compressor_math_fast.go.
func sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
