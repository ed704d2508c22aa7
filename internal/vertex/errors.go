package vertex

import "errors"

// Sentinel errors for the vertex package.
var (
	// ErrEmptySimplex indicates an operation requiring at least one vertex
	// was attempted on a zero-vertex sequence (dim/weight of an empty simplex
	// is undefined). Fatal: a construction bug, never data-dependent.
	ErrEmptySimplex = errors.New("vertex: empty simplex")
)
