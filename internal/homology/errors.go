package homology

import "errors"

// ErrInvalidDimension is returned when Betti is asked for p <= 0: beta_0 is
// computed by package components via graph traversal, not by this driver.
var ErrInvalidDimension = errors.New("homology: invalid dimension request (p must be >= 1)")
