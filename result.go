package emd

// Result is the row-major M×N output of a real-valued decomposition: rows
// 0..M-2 are IMFs ordered by extraction (lowest index = first-sifted,
// highest-frequency mode), row M-1 is the residual.
type Result struct {
	rows [][]float64
	n    int
}

// NumIMFs returns the number of IMF rows (excluding the residual), i.e.
// M-1, or 0 if the result has no residual row either.
func (r Result) NumIMFs() int {
	if len(r.rows) == 0 {
		return 0
	}
	return len(r.rows) - 1
}

// Rows returns the full M×N matrix, IMFs followed by the residual.
func (r Result) Rows() [][]float64 { return r.rows }

// IMF returns IMF row i (0-indexed, excluding the residual).
func (r Result) IMF(i int) []float64 { return r.rows[i] }

// Residual returns the final residual row.
func (r Result) Residual() []float64 { return r.rows[len(r.rows)-1] }

// Sum returns the elementwise sum of every row. For EMD and CEEMDAN results
// this reconstructs the original input within floating-point tolerance; for
// EEMD it differs from the input by the ensemble mean of the added noise.
func (r Result) Sum() []float64 {
	out := make([]float64, r.n)
	for _, row := range r.rows {
		for i, v := range row {
			out[i] += v
		}
	}
	return out
}

// ComplexResult is the BEMD counterpart of Result, over complex128 rows.
type ComplexResult struct {
	rows [][]complex128
	n    int
}

// NumIMFs returns the number of IMF rows (excluding the residual).
func (r ComplexResult) NumIMFs() int {
	if len(r.rows) == 0 {
		return 0
	}
	return len(r.rows) - 1
}

// Rows returns the full M×N matrix, IMFs followed by the residual.
func (r ComplexResult) Rows() [][]complex128 { return r.rows }

// IMF returns IMF row i (0-indexed, excluding the residual).
func (r ComplexResult) IMF(i int) []complex128 { return r.rows[i] }

// Residual returns the final residual row.
func (r ComplexResult) Residual() []complex128 { return r.rows[len(r.rows)-1] }
