package decomp

import "errors"

// ErrNotBinary indicates Decompose was given a matrix with an entry other
// than 0 or 1; the decomposition engine only recognizes binary matroids.
var ErrNotBinary = errors.New("decomp: matrix is not 0/1")

// ErrNotALeaf indicates a Node method that only applies to leaves (no
// children) was called on an internal sum node.
var ErrNotALeaf = errors.New("decomp: not a leaf node")
