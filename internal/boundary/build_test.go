package boundary_test

import (
	"testing"

	"github.com/katalvlaran/vrh/internal/boundary"
	"github.com/katalvlaran/vrh/internal/trie"
	"github.com/katalvlaran/vrh/internal/vertex"
	"github.com/stretchr/testify/require"
)

// triangleTrie builds the 1-skeleton + filled 2-simplex on vertices 0,1,2:
// three edges (0,1) (0,2) (1,2) and the face (0,1,2).
func triangleTrie(t *testing.T) *trie.Trie {
	t.Helper()
	tr := trie.NewSkel(3)
	v := func(i int) vertex.Vertex { return vertex.New(vertex.ID(i), 0) }
	tr.Add([]vertex.Vertex{v(0), v(1)})
	tr.Add([]vertex.Vertex{v(0), v(2)})
	tr.Add([]vertex.Vertex{v(1), v(2)})
	tr.Add([]vertex.Vertex{v(0), v(1), v(2)})
	return tr
}

// TestBuildDim1IsIncidenceOfVerticesAndEdges checks d_1: 3 rows
// (0-simplices), 3 cols (1-simplices), each column exactly two ones (an
// edge has exactly two endpoint faces).
func TestBuildDim1IsIncidenceOfVerticesAndEdges(t *testing.T) {
	tr := triangleTrie(t)
	m, err := boundary.Build(tr, 1)
	require.NoError(t, err)
	require.NotNil(t, m.Dense)
	require.Equal(t, 3, m.Rows)
	require.Equal(t, 3, m.Cols)

	for j := 0; j < m.Cols; j++ {
		ones := 0
		for i := 0; i < m.Rows; i++ {
			v, ok := m.Dense.Get(i, j)
			require.True(t, ok)
			if v == 1 {
				ones++
			}
		}
		require.Equal(t, 2, ones, "column %d", j)
	}
}

// TestBuildDim2EachColumnHasThreeFaces: d_2 on the filled triangle has 1
// column (the 2-simplex), 3 rows (its edges), and every row is a face.
func TestBuildDim2EachColumnHasThreeFaces(t *testing.T) {
	tr := triangleTrie(t)
	m, err := boundary.Build(tr, 2)
	require.NoError(t, err)
	require.NotNil(t, m.Dense)
	require.Equal(t, 3, m.Rows)
	require.Equal(t, 1, m.Cols)
	for i := 0; i < 3; i++ {
		v, _ := m.Dense.Get(i, 0)
		require.Equal(t, uint(1), v)
	}
}

// TestBuildBeyondComplexDimensionIsEmpty: p exceeding the built dimension
// yields an empty (Dense == nil) matrix, not an error.
func TestBuildBeyondComplexDimensionIsEmpty(t *testing.T) {
	tr := triangleTrie(t)
	m, err := boundary.Build(tr, 3)
	require.NoError(t, err)
	require.Nil(t, m.Dense)
	require.Equal(t, 0, m.Cols)
}

// TestBuildZeroDimensionIsProgrammerError: p <= 0 is rejected.
func TestBuildZeroDimensionIsProgrammerError(t *testing.T) {
	tr := triangleTrie(t)
	_, err := boundary.Build(tr, 0)
	require.ErrorIs(t, err, boundary.ErrInvalidDimension)
}
