package matrix

import "fmt"

// Submatrix is a pair of sorted index sequences naming a submatrix of some
// named parent matrix, per spec.md §3. Its lifetime is independent of the
// parent; it is used to return violating submatrices and to describe
// zoom/filter operations.
type Submatrix struct {
	Rows []int
	Cols []int
}

// validate checks Rows and Cols are sorted, in-bounds, and duplicate-free.
func (s Submatrix) validate(parentRows, parentCols int) error {
	check := func(idxs []int, bound int, what string) error {
		prev := -1
		for _, i := range idxs {
			if i <= prev {
				return fmt.Errorf("Submatrix: %s indices not strictly increasing", what)
			}
			if i < 0 || i >= bound {
				return fmt.Errorf("Submatrix: %s index %d out of [0,%d): %w", what, i, bound, ErrOutOfRange)
			}
			prev = i
		}
		return nil
	}
	if err := check(s.Rows, parentRows, "row"); err != nil {
		return err
	}
	return check(s.Cols, parentCols, "column")
}

// Zoom extracts the submatrix named by sub from m, preserving row/column
// order, per spec.md §4.1's zoomSubmat contract.
// Complexity: O(len(sub.Rows) + len(sub.Cols) + nnz of m's selected rows).
func Zoom(m *Matrix, sub Submatrix) (*Matrix, error) {
	if err := sub.validate(m.rows, m.cols); err != nil {
		return nil, err
	}
	if len(sub.Rows) == 0 || len(sub.Cols) == 0 {
		return nil, fmt.Errorf("Zoom: %w", ErrBadShape)
	}
	colPos := make(map[int]int, len(sub.Cols))
	for newCol, origCol := range sub.Cols {
		colPos[origCol] = newCol
	}
	b, err := NewBuilder(len(sub.Rows), len(sub.Cols), m.width)
	if err != nil {
		return nil, err
	}
	for _, origRow := range sub.Rows {
		start, end := m.rowSlice[origRow], m.rowSlice[origRow+1]
		var entries []Entry
		for k := start; k < end; k++ {
			if newCol, ok := colPos[m.entryColumns[k]]; ok {
				entries = append(entries, Entry{Col: newCol, Val: m.entryValues[k]})
			}
		}
		// entries were gathered in original-column order, which after
		// remapping through colPos (built from the already-sorted sub.Cols)
		// remains strictly increasing.
		if err := b.SetRow(entries); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// AllRows returns the identity Submatrix row sequence 0..rows-1.
func AllRows(rows int) []int {
	out := make([]int, rows)
	for i := range out {
		out[i] = i
	}
	return out
}

// AllCols returns the identity Submatrix column sequence 0..cols-1.
func AllCols(cols int) []int {
	out := make([]int, cols)
	for i := range out {
		out[i] = i
	}
	return out
}
