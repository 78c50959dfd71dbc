package tdec

import "errors"

// ErrUnknownRow indicates a column referenced a row index never registered
// with New.
var ErrUnknownRow = errors.New("tdec: unknown row index")

// ErrNotGraphic indicates a column's row support does not form a simple
// path in the graph built so far, so the matrix (through this column) is
// not the network matrix of any graph.
var ErrNotGraphic = errors.New("tdec: column support is not graphic")
