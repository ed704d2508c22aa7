package viz

import (
	"fmt"
	"io"
	"text/template"

	"github.com/katalvlaran/vrh/internal/vertex"
)

// Source is the read-only view viz needs from a complex: its vertices and
// its edges. *rips.Complex and *trie.Trie both satisfy this structurally.
type Source interface {
	IterDim(d int) []vertex.Simplex
}

var dotTemplate = template.Must(template.New("dot").Parse(
	`graph {
{{- range .Nodes}}
	{{.}};
{{- end}}
{{- range .Edges}}
	{{.From}} -- {{.To}};
{{- end}}
}
`))

type dotEdge struct {
	From, To vertex.ID
}

type dotDoc struct {
	Nodes []vertex.ID
	Edges []dotEdge
}

// WriteDOT renders c's 1-skeleton as a DOT document to w: one node per
// 0-simplex (vertex id), one edge per 1-simplex.
func WriteDOT(w io.Writer, c Source) error {
	doc := dotDoc{}
	for _, s := range c.IterDim(0) {
		doc.Nodes = append(doc.Nodes, s.Vertices()[0].ID)
	}
	for _, s := range c.IterDim(1) {
		vs := s.Vertices()
		if len(vs) != 2 {
			continue
		}
		doc.Edges = append(doc.Edges, dotEdge{From: vs[0].ID, To: vs[1].ID})
	}

	if err := dotTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("viz: rendering DOT: %w", err)
	}
	return nil
}
