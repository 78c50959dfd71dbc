package matrix

// Support returns S with S[i,j] = 1 iff m[i,j] != 0, per spec.md §4.1.
// Complexity: O(nnz).
func Support(m *Matrix) (*Matrix, error) {
	vals := make([]int64, len(m.entryValues))
	for i := range vals {
		vals[i] = 1
	}
	cols := make([]int, len(m.entryColumns))
	copy(cols, m.entryColumns)
	rowSlice := make([]int, len(m.rowSlice))
	copy(rowSlice, m.rowSlice)
	return &Matrix{rows: m.rows, cols: m.cols, width: Width8, rowSlice: rowSlice, entryColumns: cols, entryValues: vals}, nil
}

// SignedSupport returns S taking the sign of each entry of m, in {-1,0,+1}.
// Complexity: O(nnz).
func SignedSupport(m *Matrix) (*Matrix, error) {
	vals := make([]int64, len(m.entryValues))
	for i, v := range m.entryValues {
		switch {
		case v > 0:
			vals[i] = 1
		case v < 0:
			vals[i] = -1
		}
	}
	cols := make([]int, len(m.entryColumns))
	copy(cols, m.entryColumns)
	rowSlice := make([]int, len(m.rowSlice))
	copy(rowSlice, m.rowSlice)
	return &Matrix{rows: m.rows, cols: m.cols, width: Width8, rowSlice: rowSlice, entryColumns: cols, entryValues: vals}, nil
}

// IsBinary reports whether every entry of m is 0 or 1.
func IsBinary(m *Matrix) bool {
	for _, v := range m.entryValues {
		if v != 1 {
			return false
		}
	}
	return true
}

// IsTernary reports whether every entry of m is in {-1,0,1}.
func IsTernary(m *Matrix) bool {
	for _, v := range m.entryValues {
		if v != 1 && v != -1 {
			return false
		}
	}
	return true
}
