package emd

import (
	"math"

	"github.com/cwbudde/algo-emd/internal/extrema"
	"github.com/cwbudde/algo-emd/internal/spline"
)

// EvenDirections returns numDirections angles evenly spaced over
// [0, 2*pi), a convenience for BEMD's direction set (§8 boundary
// scenario 7 uses 64 evenly spaced directions).
func EvenDirections(numDirections int) []float64 {
	if numDirections <= 0 {
		return nil
	}
	out := make([]float64, numDirections)
	step := 2 * math.Pi / float64(numDirections)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// BEMD decomposes a complex-valued signal into M-1 intrinsic mode
// functions plus a residual via bivariate EMD: at each sift-once step,
// the signal is projected onto every angle in directions, each
// projection's maxima-only envelope is built via the cubic-spline
// builder, and the direction-weighted mean of those envelopes is
// subtracted from the signal (§4.E). Unlike EMD/EEMD/CEEMDAN, there is
// no S-number criterion — the per-mode sift runs exactly num_siftings
// times, and a single sifting workspace is used (no ensemble).
func BEMD(input []complex128, directions []float64, m int, opts ...Option) (ComplexResult, error) {
	n := len(input)
	if n == 0 {
		return ComplexResult{}, nil
	}

	cfg := applyOptions(opts...)
	if err := validateBEMD(cfg, directions); err != nil {
		return ComplexResult{}, err
	}

	if m <= 0 {
		m = NumIMFs(n)
	}
	if m <= 0 {
		m = 1
	}

	residual := make([]complex128, n)
	copy(residual, input)

	rows := make([][]complex128, m)

	extremaWS := extrema.NewWorkspace(n)
	splineWS := spline.NewWorkspace(n + 2)
	proj := make([]float64, n)
	env := make([]float64, n)
	weights := make([]complex128, len(directions))
	for i, phi := range directions {
		weights[i] = complex(math.Cos(phi), math.Sin(phi))
	}
	mean := make([]complex128, n)

	for imfI := 0; imfI < m-1; imfI++ {
		x := make([]complex128, n)
		copy(x, residual)

		for iter := 0; iter < cfg.numSiftings; iter++ {
			for i := range mean {
				mean[i] = 0
			}

			for d, phi := range directions {
				cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
				for i, v := range x {
					proj[i] = real(v)*cosPhi + imag(v)*sinPhi
				}

				ex := extremaWS.Find(proj)
				if err := splineWS.Eval(ex.MaxX, ex.MaxY, env); err != nil {
					return ComplexResult{}, mapSplineError(err)
				}

				w := weights[d]
				for i, e := range env {
					mean[i] += w * complex(e, 0)
				}
			}

			scale := complex(2.0/float64(len(directions)), 0)
			for i := range x {
				x[i] -= scale * mean[i]
			}
		}

		rows[imfI] = x
		for i := range residual {
			residual[i] -= x[i]
		}
	}
	rows[m-1] = residual

	return ComplexResult{rows: rows, n: n}, nil
}

// validateBEMD enforces BEMD's parameter rules: at least one direction,
// and a positive num_siftings since BEMD has no S-number criterion.
func validateBEMD(cfg config, directions []float64) error {
	if len(directions) == 0 {
		return newError(NoConvergencePossible, "at least one direction is required")
	}
	if cfg.numSiftings <= 0 {
		return newError(NoConvergencePossible, "num_siftings must be > 0 for BEMD")
	}
	return nil
}
