// Package emd implements the Empirical Mode Decomposition family: plain
// EMD, Ensemble EMD (EEMD), Complete Ensemble EMD with Adaptive Noise
// (CEEMDAN), and bivariate EMD (BEMD) for complex-valued signals.
//
// Each entry point decomposes a signal into a small number of intrinsic
// mode functions (IMFs) ordered from highest to lowest frequency, plus a
// residual. For EMD, CEEMDAN, and BEMD, summing every row reconstructs the
// input within floating-point tolerance; for EEMD the sum differs from the
// input by the ensemble mean of the added noise. EMD, EEMD, and CEEMDAN operate on
// []float64; BEMD operates on []complex128 and an explicit set of
// projection directions (see EvenDirections).
//
// Sifting is configured via functional Options: WithSNumber and
// WithNumSiftings control convergence, WithEnsembleSize,
// WithNoiseStrength, and WithRNGSeed control the ensemble methods'
// noise injection, and WithWorkers bounds the ensemble worker pool.
// Parameter combinations that cannot converge or that mix incompatible
// ensemble settings are rejected up front with a stable *Error carrying
// an ErrorCode.
package emd
