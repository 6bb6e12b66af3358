package emd

// config collects every parameter the four entry points accept. Each
// entry point reads only the fields relevant to it; unused fields are
// simply ignored, the same way dsp/core.ProcessorConfig is shared across
// unrelated processors in the teacher library.
type config struct {
	sNumber       int
	numSiftings   int
	ensembleSize  int
	noiseStrength float64
	rngSeed       int64
	workers       int
}

// Option mutates a config. Grounded on dsp/core.ProcessorOption /
// dsp/signal.Option.
type Option func(*config)

// defaultConfig returns defaults that satisfy parameter validation on
// their own: a finite sifting cap, a single noiseless ensemble member.
func defaultConfig() config {
	return config{
		sNumber:       0,
		numSiftings:   50,
		ensembleSize:  1,
		noiseStrength: 0,
		rngSeed:       0,
		workers:       0,
	}
}

// WithSNumber sets the S-number stopping criterion (§4.D). n <= 0
// disables it.
func WithSNumber(n int) Option {
	return func(c *config) { c.sNumber = n }
}

// WithNumSiftings sets the hard iteration cap on sifting. n <= 0
// disables it.
func WithNumSiftings(n int) Option {
	return func(c *config) { c.numSiftings = n }
}

// WithEnsembleSize sets the number of ensemble members for EEMD/CEEMDAN.
func WithEnsembleSize(n int) Option {
	return func(c *config) { c.ensembleSize = n }
}

// WithNoiseStrength sets the noise amplitude scale (relative to the
// input's standard deviation) for EEMD/CEEMDAN.
func WithNoiseStrength(s float64) Option {
	return func(c *config) { c.noiseStrength = s }
}

// WithRNGSeed sets the base RNG seed; member i's stream is derived
// deterministically from rngSeed+i (internal/rngstream).
func WithRNGSeed(seed int64) Option {
	return func(c *config) { c.rngSeed = seed }
}

// WithWorkers caps the ensemble worker pool size. n <= 0 means
// runtime-determined, still capped at the ensemble size.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// validateSifting enforces §4.F's rule that at least one sifting stopping
// criterion must be active.
func validateSifting(cfg config) error {
	if cfg.sNumber <= 0 && cfg.numSiftings <= 0 {
		return newError(NoConvergencePossible, "S_number and num_siftings are both <= 0")
	}
	return nil
}

// validateEnsemble enforces §4.F's four ensemble-parameter rules.
func validateEnsemble(cfg config) error {
	if cfg.ensembleSize == 0 {
		return newError(InvalidEnsembleSize, "ensemble_size must be >= 1")
	}
	if cfg.ensembleSize < 0 {
		return newError(InvalidEnsembleSize, "ensemble_size must be >= 1, got %d", cfg.ensembleSize)
	}
	if cfg.noiseStrength < 0 {
		return newError(InvalidNoiseStrength, "noise_strength must be >= 0, got %g", cfg.noiseStrength)
	}
	if cfg.ensembleSize == 1 && cfg.noiseStrength > 0 {
		return newError(NoiseAddedToEMD, "noise_strength > 0 with ensemble_size == 1")
	}
	if cfg.ensembleSize > 1 && cfg.noiseStrength == 0 {
		return newError(NoNoiseAddedToEEMD, "ensemble_size > 1 with noise_strength == 0")
	}
	return validateSifting(cfg)
}
