package neighborhood

import (
	"github.com/katalvlaran/vrh/internal/matrix"
	"github.com/katalvlaran/vrh/internal/vertex"
)

// Adjacency is a symmetric boolean neighborhood graph over n vertices,
// backed by a Sparse[bool] matrix plus a word-packed bitset per row, so a
// lower-neighbor scan tests one bit per candidate id.
type Adjacency struct {
	n      int
	sparse *matrix.Sparse[bool]
	rows   []row
}

// ToAdjacency thresholds a distance matrix at eps: cell (r, c) is adjacent
// iff the distance is present and strictly less than eps. Self-loops (r==c)
// may end up set; callers filter them out via the strict u < v.ID order in
// LowerNeighbors. Missing distance cells are treated as "not adjacent", not
// an error.
func ToAdjacency(dist matrix.Matrix[float64], eps float64) (*Adjacency, error) {
	n, cols := dist.Dim()
	sparse, err := matrix.NewSparse[bool](n, cols)
	if err != nil {
		return nil, err
	}

	a := &Adjacency{n: n, sparse: sparse, rows: make([]row, n)}
	for i := range a.rows {
		a.rows[i] = newRow(cols)
	}

	for r := 0; r < n; r++ {
		for c := 0; c < cols; c++ {
			d, ok := dist.Get(r, c)
			if !ok || !(d < eps) {
				continue
			}
			if err := sparse.Set(r, c, true); err != nil {
				return nil, err
			}
			a.rows[r].set(c)
		}
	}
	return a, nil
}

// N returns the number of vertices in the adjacency graph.
func (a *Adjacency) N() int { return a.n }

// Adjacent reports whether r and c are neighbors (reads through the
// Sparse[bool] backing).
func (a *Adjacency) Adjacent(r, c int) bool {
	v, _ := a.sparse.Get(r, c)
	return v
}

// LowerNeighbors returns { u : Adjacent(v.ID, u) && u < v.ID }, the set
// package rips intersects across a simplex's vertices. The result is
// produced in ascending u order.
func (a *Adjacency) LowerNeighbors(v vertex.Vertex) []vertex.ID {
	id := int(v.ID)
	if id < 0 || id >= a.n {
		return nil
	}
	r := a.rows[id]
	out := make([]vertex.ID, 0, id)
	for u := 0; u < id; u++ {
		if r.test(u) {
			out = append(out, vertex.ID(u))
		}
	}
	return out
}
