package matrix

// Matrix is a rectangular, row/column-indexed container. Get reports
// whether a value is present (dense: true for every in-bounds cell; sparse:
// true only for cells that were explicitly Set) alongside the value itself.
type Matrix[T any] interface {
	// Dim returns (rows, cols). Complexity: O(1).
	Dim() (rows, cols int)

	// Get retrieves the element at (r, c). The second return is false if
	// the cell is out of bounds, or (for Sparse) never Set.
	Get(r, c int) (T, bool)

	// Set assigns v at (r, c). Returns ErrOutOfRange if r or c is out of
	// bounds.
	Set(r, c int, v T) error
}
