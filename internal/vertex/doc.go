// Package vertex defines the Vertex and Simplex value types shared by the
// neighborhood, trie, rips, boundary, and homology packages.
//
// Vertex and Simplex are immutable and value-typed: once constructed, a
// Simplex never changes the order or membership of its vertices. Equality
// is order-sensitive (see Simplex.Equal) because the simplex trie
// canonicalizes vertices in insertion order, not sorted order.
package vertex
