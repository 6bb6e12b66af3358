package emd

import (
	"errors"

	"github.com/cwbudde/algo-emd/internal/kernel"
	"github.com/cwbudde/algo-emd/internal/sift"
	"github.com/cwbudde/algo-emd/internal/spline"
)

// EMD decomposes a real-valued signal into M-1 intrinsic mode functions
// plus a residual via plain Empirical Mode Decomposition. m == 0 requests
// the default row count from NumIMFs(len(input)). Ensemble-related
// options (WithEnsembleSize, WithNoiseStrength, WithRNGSeed) are ignored;
// EMD sifts a single, noiseless realisation of input.
func EMD(input []float64, m int, opts ...Option) (Result, error) {
	n := len(input)
	if n == 0 {
		return Result{}, nil
	}

	cfg := applyOptions(opts...)
	if err := validateSifting(cfg); err != nil {
		return Result{}, err
	}

	if m <= 0 {
		m = NumIMFs(n)
	}
	if m <= 0 {
		m = 1
	}

	rows := make([][]float64, m)
	residual := make([]float64, n)
	kernel.Copy(residual, input)

	ws := sift.NewWorkspace(n)
	for i := 0; i < m-1; i++ {
		row := make([]float64, n)
		kernel.Copy(row, residual)

		if _, err := ws.Sift(row, cfg.sNumber, cfg.numSiftings); err != nil {
			return Result{}, mapSplineError(err)
		}

		rows[i] = row
		kernel.SubInPlace(residual, row)
	}
	rows[m-1] = residual

	return Result{rows: rows, n: n}, nil
}

// mapSplineError translates a spline package error into the stable
// ErrorCode taxonomy §6 requires at the public boundary.
func mapSplineError(err error) error {
	switch {
	case errors.Is(err, spline.ErrNotEnoughPoints):
		return newError(NotEnoughPointsForSpline, "%v", err)
	case errors.Is(err, spline.ErrInvalidPoints):
		return newError(InvalidSplinePoints, "%v", err)
	default:
		return newError(NumericLibraryError, "%v", err)
	}
}
