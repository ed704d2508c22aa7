// Package reduce transforms a dense matrix to Smith-normal form over GF(2)
// in place, using only the elementary row/column swaps and adds package
// matrix's Dense exposes. Package homology reads the resulting diagonal to
// recover matrix rank.
package reduce
