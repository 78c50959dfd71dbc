package multigraph

import "errors"

// Sentinel errors for multigraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node handle that
	// does not exist (never allocated, or already deleted).
	ErrNodeNotFound = errors.New("multigraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge handle that
	// does not exist.
	ErrEdgeNotFound = errors.New("multigraph: edge not found")

	// ErrInconsistent is returned by Consistency when a slab invariant is
	// violated; always indicates a bug in the package, not caller misuse.
	ErrInconsistent = errors.New("multigraph: inconsistent state")
)
