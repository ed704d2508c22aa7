// Package boundary builds the p-th boundary matrix of a simplicial complex:
// a dense R-by-C incidence matrix over GF(2) whose rows are the complex's
// (p-1)-simplices and whose columns are its p-simplices, with a 1 wherever
// the row-simplex is a face of the column-simplex. Package reduce consumes
// the result; package homology composes the two into Betti numbers.
package boundary
