package emd

import "fmt"

// ErrorCode is the stable numeric error taxonomy returned by the
// decomposition entry points, mirroring the reference library's
// gsl-style error enumeration. Code 0 is always success.
type ErrorCode int

// Error codes, in the order the reference design enumerates them.
const (
	Success ErrorCode = iota
	InvalidEnsembleSize
	InvalidNoiseStrength
	NoiseAddedToEMD
	NoNoiseAddedToEEMD
	NoConvergencePossible
	NotEnoughPointsForSpline
	InvalidSplinePoints
	NumericLibraryError
	NoConvergenceInSifting

	errorCodeCount
)

var errorCodeNames = [errorCodeCount]string{
	Success:                  "SUCCESS",
	InvalidEnsembleSize:      "INVALID_ENSEMBLE_SIZE",
	InvalidNoiseStrength:     "INVALID_NOISE_STRENGTH",
	NoiseAddedToEMD:          "NOISE_ADDED_TO_EMD",
	NoNoiseAddedToEEMD:       "NO_NOISE_ADDED_TO_EEMD",
	NoConvergencePossible:    "NO_CONVERGENCE_POSSIBLE",
	NotEnoughPointsForSpline: "NOT_ENOUGH_POINTS_FOR_SPLINE",
	InvalidSplinePoints:      "INVALID_SPLINE_POINTS",
	NumericLibraryError:      "NUMERIC_LIBRARY_ERROR",
	NoConvergenceInSifting:   "NO_CONVERGENCE_IN_SIFTING",
}

// String returns the stable uppercase-snake-case name of the error code,
// e.g. "INVALID_ENSEMBLE_SIZE". Unknown codes render as "ERROR_CODE(n)".
func (c ErrorCode) String() string {
	if c >= 0 && c < errorCodeCount {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ERROR_CODE(%d)", int(c))
}

// Valid reports whether c is a known error code.
func (c ErrorCode) Valid() bool {
	return c >= 0 && c < errorCodeCount
}

// Error wraps an ErrorCode as a Go error, carrying an optional message
// with additional context beyond the stable code name.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "emd: " + e.Code.String()
	}
	return fmt.Sprintf("emd: %s: %s", e.Code, e.Message)
}

// ErrorString renders the stable name for code, matching the reference
// entry point emd_error_string.
func ErrorString(code ErrorCode) string {
	return code.String()
}

func newError(code ErrorCode, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
