package matrix

// Transpose produces a freshly allocated transpose of m. For each row of
// the result, entries are emitted in increasing column order (i.e.
// original row order) via a counting sort over m's original column
// indices, matching spec.md §4.1's contract exactly.
// Complexity: O(rows + cols + nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	nnz := m.NNZ()
	// Stage 1: count nonzeros per original column (== result row).
	counts := make([]int, m.cols+1)
	for _, c := range m.entryColumns {
		counts[c+1]++
	}
	// Stage 2: prefix-sum into rowSlice for the result.
	rowSlice := make([]int, m.cols+1)
	for c := 0; c < m.cols; c++ {
		rowSlice[c+1] = rowSlice[c] + counts[c+1]
	}
	// Stage 3: scatter entries; a cursor per result row tracks the next
	// free offset. Because the source is visited row by row (increasing
	// original row index) and each target row receives entries via its
	// own monotonically advancing cursor, entries land in increasing
	// original-row order within each target row — i.e. increasing column
	// order of the transposed matrix.
	cursor := make([]int, m.cols)
	copy(cursor, rowSlice[:m.cols])
	entryColumns := make([]int, nnz)
	entryValues := make([]int64, nnz)
	for r := 0; r < m.rows; r++ {
		start, end := m.rowSlice[r], m.rowSlice[r+1]
		for k := start; k < end; k++ {
			origCol := m.entryColumns[k]
			pos := cursor[origCol]
			entryColumns[pos] = r
			entryValues[pos] = m.entryValues[k]
			cursor[origCol] = pos + 1
		}
	}
	return &Matrix{
		rows: m.cols, cols: m.rows, width: m.width,
		rowSlice: rowSlice, entryColumns: entryColumns, entryValues: entryValues,
	}, nil
}
