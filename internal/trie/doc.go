// Package trie implements the arena-backed simplex prefix tree: the data
// structure the Vietoris-Rips constructor (package rips) builds into and
// the boundary-matrix builder (package boundary) iterates by dimension.
//
// The trie's parent/child links form a cycle of intent (children point
// down, reconstruction needs to walk up). Rather than pointer-chasing
// nodes with up/down links, every node lives in a flat arena indexed by an
// integer NodeIx; parent and children are parallel slices keyed by that
// index, and a secondary depth index gives O(1)-amortized, append-only
// access to "every simplex of dimension d". This layout is the same trick
// the bart route tries in this lineage use for their node tables — no real
// pointers, only slice indices, so nodes can be appended without
// invalidating any index already handed out. A NodeIx must never be used
// against a different Trie's arena.
package trie
