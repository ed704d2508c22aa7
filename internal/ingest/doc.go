// Package ingest reads a point cloud from CSV: one point per row, one
// coordinate per field. This is external-collaborator glue outside the
// algebraic core — it exists so cmd/vrh is a complete runnable program
// rather than a library with no entry point.
package ingest
