package emd

import (
	"testing"

	"github.com/cwbudde/algo-emd/internal/testutil"
)

func TestEEMDReproducibleWithSingleWorker(t *testing.T) {
	input := testutil.TwoTone(8, 1, 64, 2, 256)
	opts := []Option{
		WithSNumber(4),
		WithNumSiftings(50),
		WithEnsembleSize(8),
		WithNoiseStrength(0.2),
		WithRNGSeed(123),
		WithWorkers(1),
	}

	a, err := EEMD(input, 0, opts...)
	if err != nil {
		t.Fatalf("EEMD (run 1): %v", err)
	}
	b, err := EEMD(input, 0, opts...)
	if err != nil {
		t.Fatalf("EEMD (run 2): %v", err)
	}

	for row := range a.Rows() {
		testutil.RequireSliceNearlyEqual(t, a.Rows()[row], b.Rows()[row], 1e-12)
	}
}

func TestEEMDSumIsFiniteAndCloseToInput(t *testing.T) {
	// Unlike plain EMD, EEMD's per-mode average does not exactly
	// reconstruct input: each member adds independent noise that only
	// cancels in expectation. A finite ensemble leaves residual noise of
	// order noise_strength*stddev(input)/sqrt(ensemble_size).
	input := testutil.TwoTone(8, 1, 64, 2, 256)
	result, err := EEMD(input, 0,
		WithSNumber(4), WithNumSiftings(50),
		WithEnsembleSize(6), WithNoiseStrength(0.2), WithRNGSeed(1))
	if err != nil {
		t.Fatalf("EEMD: %v", err)
	}

	sum := result.Sum()
	testutil.RequireFinite(t, sum)

	diff, err := testutil.MaxAbsDiff(sum, input)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if diff > 5 {
		t.Fatalf("max abs diff = %v, implausibly large for noise_strength=0.2", diff)
	}
}

func TestEEMDRejectsNoiseWithSingleMember(t *testing.T) {
	input := testutil.Sine(8, 1, 32)
	_, err := EEMD(input, 0, WithEnsembleSize(1), WithNoiseStrength(0.1))
	if err == nil {
		t.Fatalf("expected an error: ensemble_size == 1 with noise_strength > 0")
	}
}

func TestEEMDRejectsNoNoiseWithEnsemble(t *testing.T) {
	input := testutil.Sine(8, 1, 32)
	_, err := EEMD(input, 0, WithEnsembleSize(4), WithNoiseStrength(0))
	if err == nil {
		t.Fatalf("expected an error: ensemble_size > 1 with noise_strength == 0")
	}
}

func TestEEMDRejectsNegativeEnsembleSize(t *testing.T) {
	input := testutil.Sine(8, 1, 32)
	_, err := EEMD(input, 0, WithEnsembleSize(-1))
	if err == nil {
		t.Fatalf("expected an error for a negative ensemble size")
	}
}
