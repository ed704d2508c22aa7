package viz_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/vrh/internal/trie"
	"github.com/katalvlaran/vrh/internal/vertex"
	"github.com/katalvlaran/vrh/internal/viz"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	tr := trie.NewSkel(3)
	tr.Add([]vertex.Vertex{vertex.New(0, 0), vertex.New(1, 0)})

	var buf strings.Builder
	require.NoError(t, viz.WriteDOT(&buf, tr))

	out := buf.String()
	require.Contains(t, out, "graph {")
	require.Contains(t, out, "0;")
	require.Contains(t, out, "0 -- 1;")
}
