package emd

import (
	"sync"

	"github.com/cwbudde/algo-emd/internal/kernel"
	"github.com/cwbudde/algo-emd/internal/rngstream"
	"github.com/cwbudde/algo-emd/internal/sift"
	"github.com/cwbudde/algo-emd/internal/sigstats"
	"github.com/cwbudde/algo-emd/internal/workerpool"
)

// CEEMDAN decomposes a real-valued signal via Complete Ensemble EMD with
// Adaptive Noise. Each member keeps a forcing-noise buffer that starts as
// raw Gaussian noise and, after every mode, is replaced by the next EMD
// mode of that noise: mode i's forcing noise is mode (i-1)'s noise-sift
// result, i.e. for i >= 1 the i-th EMD mode of the raw noise, counting
// from one (§4.E). A second buffer, noise_residual, tracks what the
// extracted noise modes leave of the raw noise and is loaded into the
// forcing buffer only immediately before sifting it again — never used
// for forcing directly. The outer mode loop is inherently
// sequential — mode i+1 depends on mode i's residual — but every
// ensemble member within a mode runs in parallel.
func CEEMDAN(input []float64, m int, opts ...Option) (Result, error) {
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

	ensembleSize := cfg.ensembleSize

	noiseCur := make([][]float64, ensembleSize)
	noiseResidual := make([][]float64, ensembleSize)
	memberInput := make([][]float64, ensembleSize)
	scratch := make([][]float64, ensembleSize)
	memberWS := make([]*sift.Workspace, ensembleSize)
	noiseWS := make([]*sift.Workspace, ensembleSize)

	for en := 0; en < ensembleSize; en++ {
		r := rngstream.ForMember(cfg.rngSeed, en)
		noiseCur[en] = make([]float64, n)
		rngstream.UnitVarianceNoise(r, noiseCur[en])
		noiseResidual[en] = make([]float64, n)
		memberInput[en] = make([]float64, n)
		scratch[en] = make([]float64, n)
		memberWS[en] = sift.NewWorkspace(n)
		noiseWS[en] = sift.NewWorkspace(n)
	}

	residual := make([]float64, n)
	kernel.Copy(residual, input)

	output := make([][]float64, m)
	for i := range output {
		output[i] = make([]float64, n)
	}

	for imfI := 0; imfI < m-1; imfI++ {
		var outputMu sync.Mutex

		err := workerpool.Run(ensembleSize, cfg.workers, func(en int) error {
			sigma := 0.0
			if denom := sigstats.StdDev(noiseCur[en]); denom != 0 {
				sigma = cfg.noiseStrength * sigstats.StdDev(residual) / denom
			}

			kernel.Copy(memberInput[en], residual)
			if sigma != 0 {
				kernel.AddMulTo(memberInput[en], memberInput[en], noiseCur[en], sigma, scratch[en])
			}

			if _, err := memberWS[en].Sift(memberInput[en], cfg.sNumber, cfg.numSiftings); err != nil {
				return mapSplineError(err)
			}

			outputMu.Lock()
			kernel.AddInPlace(output[imfI], memberInput[en])
			outputMu.Unlock()

			// noiseCur carries the forcing noise across modes: mode i+1 forces
			// with mode i's noise-sift result, never with noiseResidual directly.
			if imfI == 0 {
				kernel.Copy(noiseResidual[en], noiseCur[en])
			} else {
				kernel.Copy(noiseCur[en], noiseResidual[en])
			}

			if _, err := noiseWS[en].Sift(noiseCur[en], cfg.sNumber, cfg.numSiftings); err != nil {
				return mapSplineError(err)
			}

			kernel.SubInPlace(noiseResidual[en], noiseCur[en])
			return nil
		})
		if err != nil {
			return Result{}, err
		}

		kernel.Scale(output[imfI], 1.0/float64(ensembleSize))
		kernel.SubInPlace(residual, output[imfI])
	}

	kernel.AddInPlace(output[m-1], residual)

	return Result{rows: output, n: n}, nil
}
