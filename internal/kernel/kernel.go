// Package kernel provides the elementwise array primitives the sifter and
// ensemble driver build on: copy, add, sub, scale, and a fused
// add-with-scale. All operations are non-aliasing (the caller must pass
// disjoint src/dst buffers unless noted) and are no-ops on zero-length
// input.
package kernel

import vecmath "github.com/cwbudde/algo-vecmath"

// Copy sets dst[i] = src[i] for all i. len(dst) must equal len(src).
func Copy(dst, src []float64) {
	copy(dst, src)
}

// Add sets dst[i] = a[i] + b[i].
func Add(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	vecmath.AddBlock(dst, a, b)
}

// Sub sets dst[i] = a[i] - b[i].
func Sub(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Scale sets dst[i] = k * dst[i].
func Scale(dst []float64, k float64) {
	if len(dst) == 0 {
		return
	}
	vecmath.ScaleBlockInPlace(dst, k)
}

// AddMulTo sets dst[i] = a[i] + k*b[i]. dst may alias a but must not alias b.
func AddMulTo(dst, a, b []float64, k float64, scratch []float64) {
	if len(dst) == 0 {
		return
	}
	vecmath.ScaleBlock(scratch, b, k)
	vecmath.AddBlock(dst, a, scratch)
}

// SubInPlace sets dst[i] -= src[i].
func SubInPlace(dst, src []float64) {
	if len(dst) == 0 {
		return
	}
	for i := range dst {
		dst[i] -= src[i]
	}
}

// AddInPlace sets dst[i] += src[i].
func AddInPlace(dst, src []float64) {
	if len(dst) == 0 {
		return
	}
	vecmath.AddBlockInPlace(dst, src)
}
