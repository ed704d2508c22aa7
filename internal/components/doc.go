// Package components counts connected components of a neighborhood graph:
// beta_0, deliberately left outside the boundary/reduce/homology pipeline
// since it is answered by graph traversal rather than GF(2) rank
// arithmetic. A visited set plus an explicit queue, adapted from
// per-vertex string IDs to the dense [0, n) integer ids package
// neighborhood uses.
package components
