package linalg

import "errors"

var (
	// ErrNonSquare indicates a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrOverflow indicates the gonum/mat float64 determinant could not be
	// rounded back to an exact integer within tolerance — the matrix is too
	// large or ill-conditioned for this adapter's small-matrix contract.
	ErrOverflow = errors.New("linalg: determinant does not round to an exact integer")

	// ErrEmpty indicates a 0x0 matrix was supplied.
	ErrEmpty = errors.New("linalg: empty matrix")
)
