package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomatroid/cmr/matrix"
)

// ParseSparse reads spec.md §6's sparse text matrix format: a first line
// of "numRows numColumns numNonzeros", then numNonzeros lines of
// "row column value" with 1-based indices. Input order is not required to
// be sorted; duplicate (row,column) entries overwrite rather than sum,
// since spec.md does not specify accumulation semantics.
func ParseSparse(r io.Reader, width matrix.Width) (*matrix.Matrix, error) {
	sc := bufio.NewScanner(r)

	header, err := nextDataLine(sc)
	if err != nil {
		return nil, fmt.Errorf("format: ParseSparse: header: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return nil, fmt.Errorf("format: ParseSparse: header %q: %w", header, ErrBadFormat)
	}
	rows, err1 := strconv.Atoi(fields[0])
	cols, err2 := strconv.Atoi(fields[1])
	nnz, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil || rows <= 0 || cols <= 0 || nnz < 0 {
		return nil, fmt.Errorf("format: ParseSparse: header: %w", ErrBadFormat)
	}

	grid := make([][]int64, rows)
	for i := range grid {
		grid[i] = make([]int64, cols)
	}
	for k := 0; k < nnz; k++ {
		line, err := nextDataLine(sc)
		if err != nil {
			return nil, fmt.Errorf("format: ParseSparse: entry %d: %w", k, err)
		}
		toks := strings.Fields(line)
		if len(toks) != 3 {
			return nil, fmt.Errorf("format: ParseSparse: entry %d %q: %w", k, line, ErrBadFormat)
		}
		row, err1 := strconv.Atoi(toks[0])
		col, err2 := strconv.Atoi(toks[1])
		val, err3 := strconv.ParseInt(toks[2], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("format: ParseSparse: entry %d: %w", k, ErrBadFormat)
		}
		if row < 1 || row > rows || col < 1 || col > cols {
			return nil, fmt.Errorf("format: ParseSparse: entry %d: row/column out of [1,%d]x[1,%d]: %w", k, rows, cols, ErrBadFormat)
		}
		grid[row-1][col-1] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return matrix.FromDense(grid, width)
}

// WriteSparse renders m in the sparse text matrix format ParseSparse
// reads, always emitting entries in row-major sorted order as spec.md §6
// requires of output regardless of any input order.
func WriteSparse(w io.Writer, m *matrix.Matrix) error {
	if _, err := fmt.Fprintf(w, "%d %d %d\n", m.Rows(), m.Cols(), m.NNZ()); err != nil {
		return err
	}
	for i, row := range m.Dense() {
		for j, v := range row {
			if v == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %d %d\n", i+1, j+1, v); err != nil {
				return err
			}
		}
	}
	return nil
}
