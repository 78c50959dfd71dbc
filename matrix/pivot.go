package matrix

import "fmt"

// BinaryPivot performs a GF(2) pivot on (r,c), requiring M[r,c] = 1 and M
// binary. For i != r, j != c: M'[i,j] = M[i,j] XOR (M[i,c] AND M[r,j]);
// M'[r,c] = 1; row r and column c are otherwise unchanged. Returns a
// freshly allocated Matrix, per spec.md §4.1.
// Complexity: O(rows*cols) via a dense intermediate (pivots are called on
// the small cores the series–parallel reducer and decomposition engine
// have already stripped down).
func BinaryPivot(m *Matrix, r, c int) (*Matrix, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return nil, fmt.Errorf("BinaryPivot(%d,%d): %w", r, c, ErrOutOfRange)
	}
	if !IsBinary(m) {
		return nil, fmt.Errorf("BinaryPivot: %w", ErrNotBinary)
	}
	pivotVal, _ := m.At(r, c)
	if pivotVal != 1 {
		return nil, fmt.Errorf("BinaryPivot(%d,%d): %w", r, c, ErrBadPivot)
	}
	dense := m.Dense()
	out := make([][]int64, m.rows)
	for i := range out {
		out[i] = make([]int64, m.cols)
		copy(out[i], dense[i])
	}
	for i := 0; i < m.rows; i++ {
		if i == r {
			continue
		}
		if dense[i][c] == 0 {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j == c {
				continue
			}
			bit := (dense[i][j] ^ dense[r][j]) & 1
			out[i][j] = bit
		}
	}
	out[r][c] = 1
	return FromDense(out, Width8)
}

// TernaryPivot performs the principal pivot transform on (r,c) over the
// integers, requiring M[r,c] in {-1,+1}. Since the pivot is its own
// inverse (pivotVal*pivotVal = 1), the transform is: M'[r,c] = 1/M[r,c];
// M'[r,j] = M[r,j]/M[r,c] for j != c; M'[i,c] = -M[i,c]/M[r,c] for i != r;
// and M'[i,j] = M[i,j] - M[i,c]*M[r,j]/M[r,c] for i != r, j != c. Returns
// ErrBadEntry if the last, coupled class of entries leaves {-1,0,1} at any
// intermediate step, per spec.md §4.1. Applying TernaryPivot twice at the
// same (r,c) returns the original matrix (spec.md §9's testable pivot
// invariant), which the row/column transforms above are required for: a
// version that merely leaves row r and column c untouched is not
// self-inverse except in the degenerate GF(2) case.
func TernaryPivot(m *Matrix, r, c int) (*Matrix, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return nil, fmt.Errorf("TernaryPivot(%d,%d): %w", r, c, ErrOutOfRange)
	}
	if !IsTernary(m) {
		return nil, fmt.Errorf("TernaryPivot: %w", ErrNotTernary)
	}
	pivotVal, _ := m.At(r, c)
	if pivotVal != 1 && pivotVal != -1 {
		return nil, fmt.Errorf("TernaryPivot(%d,%d): %w", r, c, ErrBadPivot)
	}
	dense := m.Dense()
	out := make([][]int64, m.rows)
	for i := range out {
		out[i] = make([]int64, m.cols)
		copy(out[i], dense[i])
	}
	invPivot := pivotVal // pivotVal is its own inverse since it is +-1
	for i := 0; i < m.rows; i++ {
		if i == r {
			continue
		}
		mic := dense[i][c]
		for j := 0; j < m.cols; j++ {
			if j == c {
				continue
			}
			if mic == 0 {
				continue
			}
			delta := mic * invPivot * dense[r][j]
			v := dense[i][j] - delta
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("TernaryPivot(%d,%d) at (%d,%d): %w", r, c, i, j, ErrBadEntry)
			}
			out[i][j] = v
		}
		out[i][c] = -mic * invPivot
	}
	for j := 0; j < m.cols; j++ {
		if j == c {
			continue
		}
		out[r][j] = dense[r][j] * invPivot
	}
	out[r][c] = invPivot
	return FromDense(out, Width8)
}
