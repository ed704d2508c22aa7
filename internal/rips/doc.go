// Package rips builds the Vietoris-Rips simplicial complex from a
// neighborhood graph, following Zomorodian's inductive algorithm: the
// k-skeleton is expanded one dimension at a time by intersecting each
// simplex's vertices' lower-neighbor sets.
//
// Algo enumerates the construction strategies as a tagged variant
// (Inductive is implemented; Incremental is an unreachable placeholder —
// persistent/streaming construction is out of this system's scope), mirroring
// the MatchingAlgo/BoundAlgo enum-dispatch style used for solver selection
// elsewhere in this lineage.
package rips
