package homology_test

import (
	"testing"

	"github.com/katalvlaran/vrh/internal/homology"
	"github.com/katalvlaran/vrh/internal/trie"
	"github.com/katalvlaran/vrh/internal/vertex"
	"github.com/stretchr/testify/require"
)

// fullSimplex builds a trie containing a single p-simplex on vertices
// 0..p and every one of its faces, by inserting all non-empty subsets in
// ascending-id order — a filled simplex, whose Betti numbers should read
// beta_0 = 1, beta_i = 0 for i >= 1.
func fullSimplex(p int) *trie.Trie {
	n := p + 1
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	t := trie.New()
	var insertSubsets func(start int, acc []vertex.Vertex)
	insertSubsets = func(start int, acc []vertex.Vertex) {
		if len(acc) > 0 {
			t.Add(append([]vertex.Vertex{}, acc...))
		}
		for i := start; i < n; i++ {
			insertSubsets(i+1, append(acc, vertex.New(vertex.ID(ids[i]), 0)))
		}
	}
	insertSubsets(0, nil)
	return t
}

// TestBettiOfSingleSimplexIsZeroAboveZero verifies that for the complex
// consisting of a single p-simplex and all its faces, beta_i = 0 for every
// i >= 1 (a filled simplex is topologically trivial above dimension 0;
// beta_0 = 1 is a components-package concern, not tested here).
func TestBettiOfSingleSimplexIsZeroAboveZero(t *testing.T) {
	for _, p := range []int{1, 2, 3} {
		tr := fullSimplex(p)
		for i := 1; i <= p; i++ {
			b, err := homology.Betti(tr, i)
			require.NoError(t, err)
			require.Equalf(t, 0, b, "beta_%d of a %d-simplex", i, p)
		}
	}
}

// TestBettiInvalidDimension ensures p <= 0 is rejected rather than silently
// delegating to components.
func TestBettiInvalidDimension(t *testing.T) {
	tr := fullSimplex(2)
	_, err := homology.Betti(tr, 0)
	require.ErrorIs(t, err, homology.ErrInvalidDimension)
}
