// Package viz renders the 1-skeleton of a simplicial complex (vertices and
// 1-simplices) as a GraphViz DOT "undirected graph" document. Like package
// ingest, this is external-collaborator glue consuming only the interface
// it needs (a complex iterable by dimension) — no DOT library is used
// here, so this renders the handful of fixed-shape lines with
// text/template.
package viz
