// Package matrix provides a uniform get/set/dim abstraction over
// rectangular containers, with two backings: Dense (a row-major flat
// buffer) and Sparse (a keyed mapping). Elementary row/column operations
// (swap, add) are defined only on Dense, since the GF(2) reduction in
// package reduce mutates a boundary matrix in place via exactly those ops.
//
// Index convention is row-major: index = r*cols + c. Earlier revisions of
// this codebase disagreed on row-major vs column-major; this package fixes
// row-major and every caller must treat it accordingly.
package matrix
