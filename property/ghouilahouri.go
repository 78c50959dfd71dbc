package property

import (
	"errors"

	"github.com/gomatroid/cmr/matrix"
)

// ErrTooLarge indicates GhouilaHouriCheck was given more rows than its
// brute-force search is meant to handle.
var ErrTooLarge = errors.New("property: GhouilaHouriCheck: too many rows for brute-force oracle")

// maxGhouilaHouriRows bounds GhouilaHouriCheck to matrices small enough for
// its 3^rows search to finish quickly; it exists purely as a test oracle
// (see its doc comment), not a production TU test.
const maxGhouilaHouriRows = 16

// GhouilaHouriCheck is an independent brute-force total-unimodularity
// oracle for small matrices, used only as a cross-check on TestTU in
// tests (grounded on original_source's ghouila_houri.cpp). The
// Ghouila-Houri characterization: M is TU iff, for every subset R of
// rows, R can be partitioned into R1, R2 such that every column's signed
// sum over R1 minus R2 lies in {-1,0,1}.
//
// Complexity: O(3^rows * rows * cols). A single assignment of each row to
// {excluded, +1 (in R1), -1 (in R2)} simultaneously names a subset R (its
// nonzero entries) and a partition of R, so enumerating every such
// assignment and grouping by the induced R checks the existential
// quantifier over partitions for every subset R at once.
func GhouilaHouriCheck(m *matrix.Matrix) (bool, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows > maxGhouilaHouriRows {
		return false, ErrTooLarge
	}
	dense := m.Dense()
	satisfied := make([]bool, 1<<uint(rows))
	colSum := make([]int64, cols)

	var assign func(i, mask int)
	assign = func(i, mask int) {
		if i == rows {
			for j := 0; j < cols; j++ {
				if colSum[j] > 1 || colSum[j] < -1 {
					return
				}
			}
			satisfied[mask] = true
			return
		}
		assign(i+1, mask)
		for j := 0; j < cols; j++ {
			colSum[j] += dense[i][j]
		}
		assign(i+1, mask|(1<<uint(i)))
		for j := 0; j < cols; j++ {
			colSum[j] -= 2 * dense[i][j]
		}
		assign(i+1, mask|(1<<uint(i)))
		for j := 0; j < cols; j++ {
			colSum[j] += dense[i][j]
		}
	}
	assign(0, 0)

	for mask := 0; mask < 1<<uint(rows); mask++ {
		if !satisfied[mask] {
			return false, nil
		}
	}
	return true, nil
}
