package matrix

import "fmt"

// Entry is a single (column, value) pair supplied to Builder.SetRow.
type Entry struct {
	Col int
	Val int64
}

// Builder accumulates rows and produces an immutable Matrix via Build,
// matching spec.md §4.1's create(numRows, numColumns, maxNonzeros) factory
// contract: the caller fills entries respecting the CSR invariants, and
// Build validates them once, up front, rather than on every mutation.
type Builder struct {
	rows, cols int
	width      Width
	rowSlice   []int
	cols_      []int
	vals       []int64
	built      bool
}

// NewBuilder allocates a Builder for an r×c matrix of the given Width.
// Stage 1 (Validate): rows and cols must be > 0.
func NewBuilder(rows, cols int, width Width) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewBuilder(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Builder{
		rows: rows, cols: cols, width: width,
		rowSlice: make([]int, 1, rows+1),
	}, nil
}

// SetRow appends the nonzero entries for the next row, in increasing
// column order. Rows must be supplied in order 0..rows-1, exactly once each.
// Entries within a row must already be sorted by Col with no duplicates and
// no zero Val; SetRow validates this and returns ErrUnsortedColumns for an
// unsorted or duplicate Col, ErrOutOfRange for a Col outside [0,cols), a
// plain (non-sentinel) error for a zero Val, and ErrValueOutOfWidth for a
// Val that does not fit the declared Width.
func (b *Builder) SetRow(entries []Entry) error {
	if b.built {
		return fmt.Errorf("SetRow: %w", ErrInvalidBuilderState)
	}
	rowIdx := len(b.rowSlice) - 1
	if rowIdx >= b.rows {
		return fmt.Errorf("SetRow: all %d rows already set: %w", b.rows, ErrOutOfRange)
	}
	prevCol := -1
	for _, e := range entries {
		if e.Col <= prevCol {
			return fmt.Errorf("SetRow(row=%d): %w", rowIdx, ErrUnsortedColumns)
		}
		if e.Col < 0 || e.Col >= b.cols {
			return fmt.Errorf("SetRow(row=%d,col=%d): %w", rowIdx, e.Col, ErrOutOfRange)
		}
		if e.Val == 0 {
			return fmt.Errorf("SetRow(row=%d,col=%d): zero value must be omitted", rowIdx, e.Col)
		}
		if !b.width.fits(e.Val) {
			return fmt.Errorf("SetRow(row=%d,col=%d): %w", rowIdx, e.Col, ErrValueOutOfWidth)
		}
		b.cols_ = append(b.cols_, e.Col)
		b.vals = append(b.vals, e.Val)
		prevCol = e.Col
	}
	b.rowSlice = append(b.rowSlice, len(b.vals))
	return nil
}

// Build finalizes the Matrix once every row has been set via SetRow.
func (b *Builder) Build() (*Matrix, error) {
	if b.built {
		return nil, fmt.Errorf("Build: %w", ErrInvalidBuilderState)
	}
	if len(b.rowSlice)-1 != b.rows {
		return nil, fmt.Errorf("Build: %d of %d rows set: %w", len(b.rowSlice)-1, b.rows, ErrInvalidBuilderState)
	}
	b.built = true
	m := &Matrix{
		rows: b.rows, cols: b.cols, width: b.width,
		rowSlice:     b.rowSlice,
		entryColumns: b.cols_,
		entryValues:  b.vals,
	}
	return m, nil
}

// FromDense builds a Matrix directly from a dense row-major grid, skipping
// zero entries. It is a convenience factory used heavily by tests and by
// format.ParseDense.
func FromDense(grid [][]int64, width Width) (*Matrix, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, fmt.Errorf("FromDense: %w", ErrBadShape)
	}
	cols := len(grid[0])
	b, err := NewBuilder(rows, cols, width)
	if err != nil {
		return nil, err
	}
	for _, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("FromDense: ragged row: %w", ErrBadShape)
		}
		var entries []Entry
		for j, v := range row {
			if v != 0 {
				entries = append(entries, Entry{Col: j, Val: v})
			}
		}
		if err := b.SetRow(entries); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
