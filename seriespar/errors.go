package seriespar

import "errors"

// Sentinel errors for the series–parallel reducer.
var (
	// ErrNotBinaryOrTernary indicates the input matrix did not match the
	// requested reduction mode (0/1 for Binary, 0/±1 for Ternary).
	ErrNotBinaryOrTernary = errors.New("seriespar: matrix does not match reduction mode")
)
