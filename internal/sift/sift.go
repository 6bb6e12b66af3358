// Package sift implements the per-signal sifting loop: repeatedly
// subtract the mean of the upper/lower cubic-spline envelopes from a
// signal until a stopping criterion fires, producing one intrinsic mode
// function (IMF). It owns the workspace arena (extrema buffers, spline
// scratch, envelope buffers) for the lifetime of one sifter instance.
package sift

import (
	"github.com/cwbudde/algo-emd/internal/extrema"
	"github.com/cwbudde/algo-emd/internal/kernel"
	"github.com/cwbudde/algo-emd/internal/spline"
)

// divergenceWarnIterations is the iteration count at which the reference
// design raises a diagnostic warning that sifting may not be converging.
// It does not alter control flow; num_siftings or S_number must still
// bound the loop.
const divergenceWarnIterations = 10000

// Workspace holds the preallocated scratch for one sifter instance:
// extrema detection, spline evaluation, and envelope buffers sized for a
// signal of length n. Not safe for concurrent use; callers running
// ensemble members in parallel must give each goroutine its own
// Workspace.
type Workspace struct {
	n         int
	extremaWS *extrema.Workspace
	splineWS  *spline.Workspace
	upper     []float64
	lower     []float64
	mean      []float64

	prevMax, prevMin, prevZC int
	stableFor                int
	haveCounts               bool

	// Diverged is set once the iteration count crosses
	// divergenceWarnIterations. It is purely diagnostic.
	Diverged bool
}

// NewWorkspace allocates scratch for signals of length n.
func NewWorkspace(n int) *Workspace {
	return &Workspace{
		n:         n,
		extremaWS: extrema.NewWorkspace(n),
		splineWS:  spline.NewWorkspace(n + 2),
		upper:     make([]float64, n),
		lower:     make([]float64, n),
		mean:      make([]float64, n),
	}
}

// Reset clears the S-number bookkeeping between independent sifts sharing
// this workspace (e.g. successive IMFs, or the noise-mode recurrence in
// CEEMDAN).
func (w *Workspace) Reset() {
	w.haveCounts = false
	w.stableFor = 0
	w.Diverged = false
}

// Sift repeatedly subtracts the envelope mean from signal (in place) until
// the S-number criterion or an iteration cap fires, returning the number
// of iterations performed. sNumber <= 0 disables the S-number check;
// numSiftings <= 0 disables the hard iteration cap. At least one of the
// two must be positive (enforced by the caller's parameter validation).
func (w *Workspace) Sift(signal []float64, sNumber, numSiftings int) (int, error) {
	if len(signal) != w.n {
		panic("sift: signal length does not match workspace")
	}
	w.Reset()

	iterations := 0
	for {
		ex := w.extremaWS.Find(signal)

		if sNumber > 0 {
			if w.sNumberFires(ex, sNumber) {
				return iterations, nil
			}
		}

		if numSiftings > 0 && iterations >= numSiftings {
			return iterations, nil
		}

		if len(ex.MaxX) < 2 || len(ex.MinX) < 2 {
			// Too few extrema to build a meaningful envelope; the signal
			// is effectively already an IMF.
			return iterations, nil
		}

		if err := w.splineWS.Eval(ex.MaxX, ex.MaxY, w.upper); err != nil {
			return iterations, err
		}
		if err := w.splineWS.Eval(ex.MinX, ex.MinY, w.lower); err != nil {
			return iterations, err
		}

		kernel.Add(w.mean, w.upper, w.lower)
		kernel.Scale(w.mean, 0.5)
		kernel.SubInPlace(signal, w.mean)

		iterations++
		if iterations == divergenceWarnIterations {
			w.Diverged = true
		}
	}
}

// sNumberFires implements the S-number convergence test: the
// (num_max, num_min, num_zc) triple must change by at most 1 in
// sum-of-absolute-differences from the previous iteration, for sNumber
// consecutive iterations, and the extrema/zero-crossing counts must be
// balanced (accounting for the two virtual endpoint extrema on each
// envelope).
func (w *Workspace) sNumberFires(ex extrema.Set, sNumber int) bool {
	numMax := ex.NumMax()
	numMin := ex.NumMin()
	numZC := ex.NumZC

	if !w.haveCounts {
		w.prevMax, w.prevMin, w.prevZC = numMax, numMin, numZC
		w.haveCounts = true
		w.stableFor = 0
		return false
	}

	delta := absInt(numMax-w.prevMax) + absInt(numMin-w.prevMin) + absInt(numZC-w.prevZC)
	if delta <= 1 {
		w.stableFor++
	} else {
		w.stableFor = 0
	}
	w.prevMax, w.prevMin, w.prevZC = numMax, numMin, numZC

	if w.stableFor < sNumber {
		return false
	}

	balanced := absInt(numMax+numMin-4-numZC) <= 1
	return balanced
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
