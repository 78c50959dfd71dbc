package property

import "errors"

// ErrNotTernary indicates a driver was given an entry it does not accept:
// TestTU requires a 0/±1 matrix, and ComplementTU requires a 0/1 matrix.
var ErrNotTernary = errors.New("property: matrix is not 0/±1")

// ErrNotInteger is never produced by this package's own checks (every
// matrix.Matrix entry is already an int64), but is kept so callers can
// match it the way spec.md §4.7's "structure error on non-integer M" names
// it for the k-modular/equimodular drivers.
var ErrNotInteger = errors.New("property: matrix is not integer")

// ErrEmptyMatrix indicates a rank/determinant-based driver was given a
// matrix with no rows or no columns, which has no full-rank submatrix.
var ErrEmptyMatrix = errors.New("property: matrix has no rows or columns")
