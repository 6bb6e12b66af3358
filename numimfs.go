package emd

import "math"

// NumIMFs returns the default number of output rows (IMFs plus residual)
// for a signal of length n: 0 for n == 0, 1 for 1 <= n <= 3, and
// floor(log2(n)) for n >= 4.
func NumIMFs(n int) int {
	switch {
	case n <= 0:
		return 0
	case n <= 3:
		return 1
	default:
		return int(math.Log2(float64(n)))
	}
}
