// Package matrix: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for internal invariant violations, never
// for user-triggered conditions.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested rows or cols are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index is outside [0, dim).
	// Set returns this rather than panicking; Get reports an out-of-range
	// cell as ok == false.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// matrixErrorf wraps an underlying error with method/position context,
// e.g. "matrix: Dense.Set(3,7): matrix: index out of range".
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("matrix: %s(%d,%d): %w", method, row, col, err)
}
