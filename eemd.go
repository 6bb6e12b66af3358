package emd

import (
	"sync"

	"github.com/cwbudde/algo-emd/internal/kernel"
	"github.com/cwbudde/algo-emd/internal/rngstream"
	"github.com/cwbudde/algo-emd/internal/sift"
	"github.com/cwbudde/algo-emd/internal/sigstats"
	"github.com/cwbudde/algo-emd/internal/workerpool"
)

// EEMD decomposes a real-valued signal via Ensemble Empirical Mode
// Decomposition: ensemble_size noisy realisations of input are each
// decomposed independently and averaged mode-by-mode. Noise amplitude is
// noise_strength * stddev(input); member i's noise stream is seeded
// deterministically from rng_seed+i regardless of worker assignment
// (internal/rngstream), so output is reproducible across runs given the
// same parameters and a single-worker pool (§8).
func EEMD(input []float64, m int, opts ...Option) (Result, error) {
	n := len(input)
	if n == 0 {
		return Result{}, nil
	}

	cfg := applyOptions(opts...)
	if err := validateEnsemble(cfg); err != nil {
		return Result{}, err
	}

	if m <= 0 {
		m = NumIMFs(n)
	}
	if m <= 0 {
		m = 1
	}

	noiseSigma := cfg.noiseStrength * sigstats.StdDev(input)

	output := make([][]float64, m)
	for i := range output {
		output[i] = make([]float64, n)
	}
	locks := make([]sync.Mutex, m)

	err := workerpool.Run(cfg.ensembleSize, cfg.workers, func(en int) error {
		r := rngstream.ForMember(cfg.rngSeed, en)

		residual := make([]float64, n)
		kernel.Copy(residual, input)
		if noiseSigma != 0 {
			noise := make([]float64, n)
			rngstream.Gaussian(r, noiseSigma, noise)
			kernel.AddInPlace(residual, noise)
		}

		ws := sift.NewWorkspace(n)
		row := make([]float64, n)
		for i := 0; i < m-1; i++ {
			kernel.Copy(row, residual)
			if _, err := ws.Sift(row, cfg.sNumber, cfg.numSiftings); err != nil {
				return mapSplineError(err)
			}

			locks[i].Lock()
			kernel.AddInPlace(output[i], row)
			locks[i].Unlock()

			kernel.SubInPlace(residual, row)
		}

		locks[m-1].Lock()
		kernel.AddInPlace(output[m-1], residual)
		locks[m-1].Unlock()
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	invEnsembleSize := 1.0 / float64(cfg.ensembleSize)
	for _, row := range output {
		kernel.Scale(row, invEnsembleSize)
	}

	return Result{rows: output, n: n}, nil
}
