package rips

import (
	"sort"

	"github.com/katalvlaran/vrh/internal/neighborhood"
	"github.com/katalvlaran/vrh/internal/trie"
	"github.com/katalvlaran/vrh/internal/vertex"
	"github.com/katalvlaran/vrh/internal/vrhlog"
)

// Build constructs the Vietoris-Rips complex of adj at the given
// filtration scale weight, using Zomorodian's inductive algorithm: the
// expansion runs for dimensions 1..k-1, so the result holds simplices up
// to dimension k-1.
//
// n == 0 or k == 0 yields an empty (or pure 0-skeleton) complex — not an
// error. Missing adjacency cells read as "not adjacent", also not an error.
func Build(adj *neighborhood.Adjacency, k int, weight vertex.Weight, algo Algo) (*Complex, error) {
	if algo != Inductive {
		return nil, ErrUnsupportedAlgo
	}

	n := adj.N()
	t := trie.NewSkel(n)
	complex := &Complex{Trie: t, K: k}
	if n == 0 || k == 0 {
		return complex, nil
	}

	current := t.IterDim(0)
	vrhlog.Log.Debug().Int("n", n).Int("k", k).Msg("rips: starting inductive expansion")

	for d := 1; d < k; d++ {
		var next []vertex.Simplex
		for _, sigma := range current {
			for _, u := range intersectLowerNeighbors(adj, sigma) {
				vs := append(append([]vertex.Vertex{}, sigma.Vertices()...), vertex.New(u, weight))
				t.Add(vs)
				next = append(next, vertex.NewSimplex(vs))
			}
		}
		vrhlog.Log.Debug().Int("dim", d).Int("count", len(next)).Msg("rips: expanded dimension")
		current = next
		if len(current) == 0 {
			break
		}
	}
	return complex, nil
}

// intersectLowerNeighbors computes N(sigma) = intersection over sigma's
// vertices of lower_nbrs(v), initialized from the first vertex and
// tightened by the rest, returned in ascending vertex-id order for a
// deterministic expansion.
func intersectLowerNeighbors(adj *neighborhood.Adjacency, sigma vertex.Simplex) []vertex.ID {
	vs := sigma.Vertices()
	if len(vs) == 0 {
		return nil
	}

	present := make(map[vertex.ID]bool)
	for _, u := range adj.LowerNeighbors(vs[0]) {
		present[u] = true
	}
	for _, v := range vs[1:] {
		tightened := make(map[vertex.ID]bool)
		for _, u := range adj.LowerNeighbors(v) {
			if present[u] {
				tightened[u] = true
			}
		}
		present = tightened
	}

	out := make([]vertex.ID, 0, len(present))
	for u := range present {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
