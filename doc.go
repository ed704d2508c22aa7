// Command vrh (Vietoris-Rips Homology) computes persistent-homology
// primitives from point-cloud data.
//
// Given a finite set of points, it derives a distance matrix, thresholds
// it to a neighborhood graph, constructs the Vietoris-Rips simplicial
// complex up to a chosen dimension, and computes Betti numbers by
// reducing boundary matrices over GF(2) to Smith-normal form.
//
// The algebraic core lives under internal/: an arena-backed simplex trie
// (internal/trie), the inductive Vietoris-Rips constructor
// (internal/rips), the boundary-matrix builder (internal/boundary), and
// the GF(2) reduction (internal/reduce), composed by internal/homology
// into Betti numbers. Everything else (CSV ingest, GraphViz export,
// sampling, CLI) is glue around that core; cmd/vrh is the runnable entry
// point.
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for
// the full requirements this module implements.
package vrh
