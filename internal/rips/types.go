package rips

import (
	"errors"

	"github.com/katalvlaran/vrh/internal/trie"
	"github.com/katalvlaran/vrh/internal/vertex"
)

// Algo selects the Vietoris-Rips construction strategy.
type Algo int

const (
	// Inductive expands the complex dimension-by-dimension via lower-
	// neighbor intersection (Zomorodian). The only implemented strategy.
	Inductive Algo = iota

	// Incremental would build the complex facet-by-facet as new points
	// arrive (online/streaming construction). Out of scope: streaming
	// construction is an explicit non-goal of this system. Selecting it
	// returns ErrUnsupportedAlgo.
	Incremental
)

// ErrUnsupportedAlgo is returned when Build is asked for an Algo this
// package does not implement.
var ErrUnsupportedAlgo = errors.New("rips: unsupported algorithm")

// Complex is a simplex trie paired with the dimension bound it was built
// to. Closure under faces is not enforced structurally by the trie itself —
// Build is responsible for inserting every face the construction needs.
type Complex struct {
	Trie *trie.Trie
	K    int
}

// IterDim returns every dimension-d simplex in this complex, delegating to
// the underlying trie. Satisfies the boundary.Source and viz.Source
// interfaces structurally.
func (c *Complex) IterDim(d int) []vertex.Simplex { return c.Trie.IterDim(d) }

// CountDim returns the number of dimension-d simplices without
// reconstructing them.
func (c *Complex) CountDim(d int) int { return c.Trie.CountDim(d) }
