package trie

import "github.com/katalvlaran/vrh/internal/vertex"

// NodeIx is an index into a Trie's arena. Never valid against any arena
// other than the one that produced it.
type NodeIx int

// rootIx is the sentinel root node, always at arena index 0.
const rootIx NodeIx = 0

// Trie is an arena-backed prefix tree over ordered vertex sequences. Every
// non-root node stores one Vertex; the root-to-node path spells a Simplex.
//
// depth[d] holds, in insertion order, the indices of every node whose
// root-path length is exactly d (so d == 1 is the 0-skeleton, d == 2 the
// 1-skeleton, and so on) — depth index equals path length, per the data
// model's invariant that "depth[d] lists exactly those nodes whose root
// path has length d". IterDim(p) therefore reads depth[p+1], since a
// p-simplex has p+1 vertices; callers only ever pass dimensions, so this
// offset stays internal to the package.
type Trie struct {
	arena     []vertex.Vertex // node payloads; index 0 is the root sentinel
	parent    []NodeIx        // parent[i] is i's parent; parent[0] == 0 by convention
	children  [][]NodeIx      // children[i] are i's children, insertion order
	depth     [][]NodeIx      // depth[d]: nodes whose root-path length == d
	nodeDepth []int           // nodeDepth[i]: path length of node i (root: 0)
}

// New returns an empty Trie: only the root sentinel occupies the arena.
func New() *Trie {
	return &Trie{
		arena:     []vertex.Vertex{{}},
		parent:    []NodeIx{rootIx},
		children:  [][]NodeIx{nil},
		depth:     nil,
		nodeDepth: []int{0},
	}
}

// NewSkel builds a Trie containing only the 0-skeleton: the n singleton
// simplices [Vertex(i, 0)] for i in [0, n).
func NewSkel(n int) *Trie {
	t := New()
	for i := 0; i < n; i++ {
		t.Add([]vertex.Vertex{vertex.New(vertex.ID(i), 0)})
	}
	return t
}

// Add inserts the path spelled by vs, creating any missing nodes along the
// way, and returns the NodeIx of the final node (the simplex itself).
// Complexity: O(len(vs) * branching factor) to find-or-create each step;
// O(1) amortized per newly created node thanks to slice append.
func (t *Trie) Add(vs []vertex.Vertex) NodeIx {
	cur := rootIx
	for _, v := range vs {
		child := t.findChild(cur, v)
		if child < 0 {
			child = t.appendNode(cur, v)
		}
		cur = child
	}
	return cur
}

// Contains reports whether vs has been inserted via Add.
func (t *Trie) Contains(vs []vertex.Vertex) bool {
	cur := rootIx
	for _, v := range vs {
		child := t.findChild(cur, v)
		if child < 0 {
			return false
		}
		cur = child
	}
	return true
}

// IterDim returns every simplex whose path length is d+1, i.e. every
// dimension-d simplex, in the order they were added to the trie.
// Complexity: O(N*d) where N = |depth[d+1]|.
func (t *Trie) IterDim(d int) []vertex.Simplex {
	pathLen := d + 1
	if pathLen < 1 || pathLen >= len(t.depth) {
		return nil
	}
	bucket := t.depth[pathLen]
	out := make([]vertex.Simplex, 0, len(bucket))
	for _, idx := range bucket {
		out = append(out, t.reconstruct(idx))
	}
	return out
}

// IterAll yields every stored simplex, in ascending-dimension order.
func (t *Trie) IterAll() []vertex.Simplex {
	var out []vertex.Simplex
	for pathLen := 1; pathLen < len(t.depth); pathLen++ {
		for _, idx := range t.depth[pathLen] {
			out = append(out, t.reconstruct(idx))
		}
	}
	return out
}

// CountDim returns |depth d|, i.e. the number of distinct dimension-d
// simplices inserted, without reconstructing any of them.
func (t *Trie) CountDim(d int) int {
	pathLen := d + 1
	if pathLen < 1 || pathLen >= len(t.depth) {
		return 0
	}
	return len(t.depth[pathLen])
}

// findChild returns the child of parent equal to v, or -1 if absent.
func (t *Trie) findChild(parent NodeIx, v vertex.Vertex) NodeIx {
	for _, c := range t.children[parent] {
		if t.arena[c].Equal(v) {
			return c
		}
	}
	return -1
}

// appendNode creates a new arena entry for v under parent and returns its
// index. It also threads the new index into children[parent] and the
// depth bucket for the new node's path length.
func (t *Trie) appendNode(parent NodeIx, v vertex.Vertex) NodeIx {
	if int(parent) < 0 || int(parent) >= len(t.arena) {
		panic(ErrInvariantViolation)
	}
	idx := NodeIx(len(t.arena))
	t.arena = append(t.arena, v)
	t.parent = append(t.parent, parent)
	t.children = append(t.children, nil)
	t.children[parent] = append(t.children[parent], idx)

	d := t.nodeDepth[parent] + 1
	t.nodeDepth = append(t.nodeDepth, d)
	for len(t.depth) <= d {
		t.depth = append(t.depth, nil)
	}
	t.depth[d] = append(t.depth[d], idx)
	return idx
}

// reconstruct walks idx up to the root, collecting vertices, then reverses
// to recover root-to-node order. Complexity: O(depth of idx).
func (t *Trie) reconstruct(idx NodeIx) vertex.Simplex {
	var vs []vertex.Vertex
	for idx != rootIx {
		if int(idx) <= 0 || int(idx) >= len(t.arena) {
			panic(ErrInvariantViolation)
		}
		vs = append(vs, t.arena[idx])
		idx = t.parent[idx]
	}
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	return vertex.NewSimplex(vs)
}
