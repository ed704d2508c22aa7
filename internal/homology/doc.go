// Package homology composes package boundary and package reduce into Betti
// numbers: beta_p = rank(ker d_p) - rank(im d_p+1) for p >= 1, computed as
// (cols(d_p) - rank(d_p)) - rank(d_p+1). beta_0 (connected components) is
// intentionally out of this package's scope; see package components.
package homology
