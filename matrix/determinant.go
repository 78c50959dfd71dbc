package matrix

import (
	"fmt"

	"github.com/gomatroid/cmr/linalg"
)

// Determinant returns the exact integer determinant of square matrix m, for
// use on the small matrices the k-modular driver and TU-certificate search
// supply (spec.md §4.1, §1: "a one-line 'integer determinant ... of a small
// dense integer matrix'" external collaborator, here wired to
// gonum.org/v1/gonum/mat via the linalg adapter rather than hand-rolled).
// Fails with ErrNonSquare or ErrOverflow, matching spec.md's error model.
func Determinant(m *Matrix) (int64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("Determinant: %w", ErrNonSquare)
	}
	d, err := linalg.Determinant(m.Dense())
	if err != nil {
		switch {
		case err == linalg.ErrNonSquare:
			return 0, fmt.Errorf("Determinant: %w", ErrNonSquare)
		case err == linalg.ErrOverflow:
			return 0, fmt.Errorf("Determinant: %w", ErrOverflow)
		default:
			return 0, fmt.Errorf("Determinant: %w", err)
		}
	}
	return d, nil
}
