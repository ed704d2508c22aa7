package boundary

import (
	"github.com/katalvlaran/vrh/internal/matrix"
	"github.com/katalvlaran/vrh/internal/vertex"
)

// Source is the read-only view a complex must expose for boundary
// construction: simplices by dimension, plus a count that avoids
// reconstructing them. *rips.Complex satisfies this structurally.
type Source interface {
	IterDim(d int) []vertex.Simplex
	CountDim(d int) int
}

// Matrix is the p-th boundary matrix together with the shape it was built
// at. Dense is nil when Rows or Cols is zero (no simplices at that
// dimension) — a data-dependent emptiness, not an error; package homology
// treats a nil Dense as rank 0.
type Matrix struct {
	Dense *matrix.Dense[uint]
	Rows  int
	Cols  int
}

// Build produces the p-th boundary matrix of c: Rows = |dim p-1|,
// Cols = |dim p|, and Dense[i,j] = 1 iff the i-th (p-1)-simplex is a face
// of the j-th p-simplex. p <= 0 is a programmer error (ErrInvalidDimension);
// p exceeding the complex's built dimension yields an empty Matrix (Dense
// == nil), not an error.
func Build(c Source, p int) (*Matrix, error) {
	if p <= 0 {
		return nil, ErrInvalidDimension
	}

	rowsSimplices := c.IterDim(p - 1)
	colsSimplices := c.IterDim(p)
	rows, cols := len(rowsSimplices), len(colsSimplices)
	if rows == 0 || cols == 0 {
		return &Matrix{Rows: rows, Cols: cols}, nil
	}

	dense, err := matrix.NewDense[uint](rows, cols)
	if err != nil {
		return nil, err
	}
	for j, sigma := range colsSimplices {
		for i, tau := range rowsSimplices {
			if tau.IsFace(sigma) {
				if err := dense.Set(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return &Matrix{Dense: dense, Rows: rows, Cols: cols}, nil
}
