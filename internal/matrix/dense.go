package matrix

// Numeric bounds the element types Dense supports elementary row/column
// operations over. GF(2) reduction (package reduce) instantiates Dense[uint]
// and reads every cell mod 2 at use time, letting values grow unreduced
// in between row/col adds — see RowAdd's comment.
type Numeric interface {
	~int | ~uint | ~uint64 | ~float64
}

// Dense is a row-major matrix: index = r*cols + c. Allocation zero-fills the
// backing buffer, so every in-bounds cell reads as the type's zero value
// until Set — this is the "dense returns Some for in-bounds cells" behavior
// the boundary-matrix builder depends on.
type Dense[T Numeric] struct {
	rows, cols int
	data       []T
}

var _ Matrix[uint] = (*Dense[uint])(nil)

// NewDense allocates a rows x cols Dense matrix, zero-initialized.
// Returns ErrBadShape if rows <= 0 or cols <= 0.
func NewDense[T Numeric](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Dim returns (rows, cols).
func (m *Dense[T]) Dim() (int, int) { return m.rows, m.cols }

func (m *Dense[T]) index(r, c int) (int, bool) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, false
	}
	return r*m.cols + c, true
}

// Get returns the value at (r, c); ok is false only when out of bounds.
func (m *Dense[T]) Get(r, c int) (T, bool) {
	idx, ok := m.index(r, c)
	if !ok {
		var zero T
		return zero, false
	}
	return m.data[idx], true
}

// Set writes v at (r, c). Returns ErrOutOfRange if indices are invalid.
func (m *Dense[T]) Set(r, c int, v T) error {
	idx, ok := m.index(r, c)
	if !ok {
		return matrixErrorf("Dense.Set", r, c, ErrOutOfRange)
	}
	m.data[idx] = v
	return nil
}

// RowSwap exchanges rows i and j in place. Indices must be in bounds;
// out-of-range indices are a programmer error (panics), treating
// elementary-op misuse as an internal invariant violation rather than a
// recoverable condition.
func (m *Dense[T]) RowSwap(i, j int) {
	if i == j {
		return
	}
	m.mustInBounds(i, 0)
	m.mustInBounds(j, 0)
	for c := 0; c < m.cols; c++ {
		oi, oj := i*m.cols+c, j*m.cols+c
		m.data[oi], m.data[oj] = m.data[oj], m.data[oi]
	}
}

// ColSwap exchanges columns i and j in place.
func (m *Dense[T]) ColSwap(i, j int) {
	if i == j {
		return
	}
	m.mustInBounds(0, i)
	m.mustInBounds(0, j)
	for r := 0; r < m.rows; r++ {
		oi, oj := r*m.cols+i, r*m.cols+j
		m.data[oi], m.data[oj] = m.data[oj], m.data[oi]
	}
}

// RowAdd sets dst <- dst + src elementwise (dst ← dst ⊕ src under GF(2),
// read mod 2 at consumption time — see package reduce). Values are not
// reduced mod 2 here; this lets a row be added multiple times without
// intermediate masking, trading a slightly wider range for fewer ops.
func (m *Dense[T]) RowAdd(src, dst int) {
	m.mustInBounds(src, 0)
	m.mustInBounds(dst, 0)
	for c := 0; c < m.cols; c++ {
		m.data[dst*m.cols+c] += m.data[src*m.cols+c]
	}
}

// ColAdd sets dst <- dst + src elementwise over columns.
func (m *Dense[T]) ColAdd(src, dst int) {
	m.mustInBounds(0, src)
	m.mustInBounds(0, dst)
	for r := 0; r < m.rows; r++ {
		m.data[r*m.cols+dst] += m.data[r*m.cols+src]
	}
}

// mustInBounds panics if either coordinate is negative or falls outside
// this matrix's dimensions. Elementary ops are only ever called by
// package reduce with indices it has itself bounds-checked against Dim();
// a violation here means a caller broke that contract.
func (m *Dense[T]) mustInBounds(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(matrixErrorf("Dense.elementaryOp", r, c, ErrOutOfRange))
	}
}
