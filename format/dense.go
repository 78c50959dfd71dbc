package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomatroid/cmr/matrix"
)

// ParseDense reads spec.md §6's dense text matrix format: a first line of
// "numRows numColumns", then numRows lines of numColumns whitespace-
// separated integers. Blank and '#'-prefixed lines are skipped anywhere.
func ParseDense(r io.Reader, width matrix.Width) (*matrix.Matrix, error) {
	sc := bufio.NewScanner(r)

	header, err := nextDataLine(sc)
	if err != nil {
		return nil, fmt.Errorf("format: ParseDense: header: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("format: ParseDense: header %q: %w", header, ErrBadFormat)
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("format: ParseDense: header: %w", ErrBadFormat)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("format: ParseDense: header: %w", ErrBadFormat)
	}

	grid := make([][]int64, rows)
	for i := 0; i < rows; i++ {
		line, err := nextDataLine(sc)
		if err != nil {
			return nil, fmt.Errorf("format: ParseDense: row %d: %w", i, err)
		}
		toks := strings.Fields(line)
		if len(toks) != cols {
			return nil, fmt.Errorf("format: ParseDense: row %d has %d entries, want %d: %w", i, len(toks), cols, ErrBadFormat)
		}
		row := make([]int64, cols)
		for j, tok := range toks {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("format: ParseDense: row %d: %w", i, ErrBadFormat)
			}
			row[j] = v
		}
		grid[i] = row
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return matrix.FromDense(grid, width)
}

// denseOptions configures WriteDense; zero defaults to '0'.
type denseOptions struct {
	zero byte
}

// DenseOption configures WriteDense, following the functional-options
// convention cmrenv.Option establishes for this module.
type DenseOption func(*denseOptions)

// WithZeroPlaceholder renders zero entries as c instead of '0', matching
// spec.md §6's "unless the caller passes a placeholder character".
func WithZeroPlaceholder(c byte) DenseOption {
	return func(o *denseOptions) { o.zero = c }
}

// WriteDense renders m in the dense text matrix format ParseDense reads.
func WriteDense(w io.Writer, m *matrix.Matrix, opts ...DenseOption) error {
	o := denseOptions{zero: '0'}
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", m.Rows(), m.Cols()); err != nil {
		return err
	}
	for _, row := range m.Dense() {
		for j, v := range row {
			sep := ""
			if j > 0 {
				sep = " "
			}
			var err error
			if v == 0 {
				_, err = fmt.Fprintf(w, "%s%c", sep, o.zero)
			} else {
				_, err = fmt.Fprintf(w, "%s%d", sep, v)
			}
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
