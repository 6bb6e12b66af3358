package emd

import "testing"

func TestErrorCodeStringIsStable(t *testing.T) {
	cases := map[ErrorCode]string{
		Success:                  "SUCCESS",
		InvalidEnsembleSize:      "INVALID_ENSEMBLE_SIZE",
		NoConvergencePossible:    "NO_CONVERGENCE_POSSIBLE",
		NotEnoughPointsForSpline: "NOT_ENOUGH_POINTS_FOR_SPLINE",
		NoConvergenceInSifting:   "NO_CONVERGENCE_IN_SIFTING",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
		if got := ErrorString(code); got != want {
			t.Errorf("ErrorString(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestErrorCodeUnknownRendersWithValue(t *testing.T) {
	unknown := ErrorCode(999)
	if unknown.Valid() {
		t.Fatalf("ErrorCode(999).Valid() = true, want false")
	}
	got := unknown.String()
	want := "ERROR_CODE(999)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestErrorMessage(t *testing.T) {
	err := newError(InvalidNoiseStrength, "noise_strength must be >= 0, got %g", -0.5)
	if err.Error() != "emd: INVALID_NOISE_STRENGTH: noise_strength must be >= 0, got -0.5" {
		t.Errorf("Error() = %q", err.Error())
	}
}
