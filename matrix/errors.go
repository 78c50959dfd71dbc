// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns these sentinels (never panics on
// a user-triggered error condition) and every caller uses errors.Is to
// branch on them, following the convention set by the teacher's own
// matrix/errors.go.
package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnsortedColumns indicates entryColumns within a row were not
	// strictly increasing, violating the CSR invariant from spec.md §3.
	ErrUnsortedColumns = errors.New("matrix: row columns not strictly increasing")

	// ErrNotBinary indicates a non-0/1 entry where a binary matrix was required.
	ErrNotBinary = errors.New("matrix: entry is not 0/1")

	// ErrNotTernary indicates an entry outside {-1,0,1} where a ternary
	// (signed-support) matrix was required.
	ErrNotTernary = errors.New("matrix: entry is not in {-1,0,1}")

	// ErrBadPivot indicates the requested pivot entry is zero, or (ternary)
	// not in {-1,+1}.
	ErrBadPivot = errors.New("matrix: pivot entry invalid")

	// ErrBadEntry indicates ternaryPivot produced an intermediate entry
	// outside {-1,0,1}, per spec.md §4.1.
	ErrBadEntry = errors.New("matrix: ternary pivot produced non-ternary entry")

	// ErrNonSquare indicates a square matrix was required (determinant).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOverflow indicates a determinant could not be recovered exactly:
	// linalg's float64 result left its exact-integer range or did not round
	// to an integer.
	ErrOverflow = errors.New("matrix: determinant overflow")

	// ErrValueOutOfWidth indicates a stored value does not fit the
	// matrix's declared Width (8/32/64-bit), per spec.md §2 component C1.
	ErrValueOutOfWidth = errors.New("matrix: value out of declared width")

	// ErrInvalidBuilderState indicates Builder.SetRow/Build was called out
	// of order or after Build already consumed the Builder.
	ErrInvalidBuilderState = errors.New("matrix: builder used out of order")
)
