package boundary

import "errors"

// ErrInvalidDimension is returned when Build is asked for p <= 0: beta_0
// (connected components) is handled by package components, not by reducing
// a boundary matrix, so p == 0 is a programmer error here.
var ErrInvalidDimension = errors.New("boundary: invalid dimension request (p must be >= 1)")
