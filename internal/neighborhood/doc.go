// Package neighborhood builds the boolean adjacency matrix a Vietoris-Rips
// construction expands from, and answers lower-neighbor queries against it.
//
// ToAdjacency thresholds a distance matrix at epsilon into a Sparse[bool];
// LowerNeighbors answers "which u < v.ID are adjacent to v" using a
// word-packed bitset per row rather than repeated sparse-map probes — the
// bitset layout (a []uint64 of words, indexed by a fixed shift and mask)
// mirrors the node-bitmap indexing in the bart route tries
// elsewhere in this lineage, adapted here to adjacency rows instead of
// stride children.
package neighborhood
