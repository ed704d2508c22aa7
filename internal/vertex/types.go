package vertex

// ID identifies a Vertex within the 0-skeleton it was built from.
type ID uint

// Weight is the filtration scale (epsilon) at which a Vertex or Simplex
// entered the complex. 0 for the 0-skeleton.
type Weight uint

// Vertex is an identity plus the filtration scale it entered at.
// Vertex is a plain value: copy it freely, compare it with Less/Equal.
type Vertex struct {
	ID     ID
	Weight Weight
}

// New constructs a Vertex with the given id and weight.
func New(id ID, weight Weight) Vertex {
	return Vertex{ID: id, Weight: weight}
}

// Less orders vertices lexicographically by (Weight, ID). Lower-neighbor
// queries (package neighborhood) compare IDs only and do not use Less.
func (v Vertex) Less(other Vertex) bool {
	if v.Weight != other.Weight {
		return v.Weight < other.Weight
	}
	return v.ID < other.ID
}

// Equal reports whether two vertices share the same identity and weight.
func (v Vertex) Equal(other Vertex) bool {
	return v.ID == other.ID && v.Weight == other.Weight
}

// Simplex is an ordered, non-empty sequence of distinct vertices, stored in
// the order the constructor appended them (NOT necessarily sorted — the
// simplex trie's insertion order is the canonical form; see package trie).
type Simplex struct {
	vs []Vertex
}

// NewSimplex wraps a vertex sequence as a Simplex. The caller is responsible
// for ensuring vertices are distinct; NewSimplex does not sort or dedupe —
// the sequence's order is load-bearing (trie canonicalization).
func NewSimplex(vs []Vertex) Simplex {
	cp := make([]Vertex, len(vs))
	copy(cp, vs)
	return Simplex{vs: cp}
}

// Vertices returns the simplex's vertex sequence in construction order.
// The returned slice is owned by the caller (a defensive copy).
func (s Simplex) Vertices() []Vertex {
	cp := make([]Vertex, len(s.vs))
	copy(cp, s.vs)
	return cp
}

// Len returns the number of vertices, i.e. dim()+1.
func (s Simplex) Len() int { return len(s.vs) }

// Dim returns |V|-1. Panics with ErrEmptySimplex (the sentinel itself as the
// panic value) if the simplex has no vertices — constructing a
// zero-vertex Simplex is a programmer error, never a data-dependent one.
func (s Simplex) Dim() int {
	if len(s.vs) == 0 {
		panic(ErrEmptySimplex)
	}
	return len(s.vs) - 1
}

// Weight is the max of the simplex's vertex weights: the epsilon at which
// its top-dimensional face first appeared.
func (s Simplex) Weight() Weight {
	if len(s.vs) == 0 {
		panic(ErrEmptySimplex)
	}
	w := s.vs[0].Weight
	for _, v := range s.vs[1:] {
		if v.Weight > w {
			w = v.Weight
		}
	}
	return w
}

// Equal reports pairwise, order-sensitive equality: two simplices built from
// the same vertex set via different cofacet chains are NOT Equal unless
// their trie paths spelled the same sequence. Tests wanting mathematical
// (set) equality must normalize first (package rips's tests use
// Trie.Contains for this).
func (s Simplex) Equal(other Simplex) bool {
	if len(s.vs) != len(other.vs) {
		return false
	}
	for i, v := range s.vs {
		if !v.Equal(other.vs[i]) {
			return false
		}
	}
	return true
}

// has reports whether v appears anywhere in the simplex's vertex sequence.
func (s Simplex) has(v Vertex) bool {
	for _, u := range s.vs {
		if u.Equal(v) {
			return true
		}
	}
	return false
}

// IsFace reports whether s is a face of b: s.dim() == b.dim()-1 and every
// vertex of s is present in b. A 0-simplex (single vertex) has no faces.
func (s Simplex) IsFace(b Simplex) bool {
	if b.Dim() == 0 {
		return false
	}
	if s.Dim() != b.Dim()-1 {
		return false
	}
	for _, v := range s.vs {
		if !b.has(v) {
			return false
		}
	}
	return true
}
