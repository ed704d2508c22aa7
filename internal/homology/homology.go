package homology

import (
	"github.com/katalvlaran/vrh/internal/boundary"
	"github.com/katalvlaran/vrh/internal/reduce"
)

// Betti computes beta_p = (cols(d_p) - rank(d_p)) - rank(d_p+1) for p >= 1.
// p <= 0 returns ErrInvalidDimension: beta_0 is a component count, computed
// by package components instead.
//
// Note: a naive implementation of this formula can read Z's diagonal
// twice when it means to read B's diagonal for rank(d_p+1); this
// implementation reduces d_p+1 separately and reads B's own diagonal.
func Betti(c boundary.Source, p int) (int, error) {
	if p <= 0 {
		return 0, ErrInvalidDimension
	}

	z, err := boundary.Build(c, p)
	if err != nil {
		return 0, err
	}
	rankZ := 0
	if z.Dense != nil {
		reduce.Z2(z.Dense, 0)
		rankZ = reduce.Rank(z.Dense)
	}

	b, err := boundary.Build(c, p+1)
	if err != nil {
		return 0, err
	}
	rankB := 0
	if b.Dense != nil {
		reduce.Z2(b.Dense, 0)
		rankB = reduce.Rank(b.Dense)
	}

	return (z.Cols - rankZ) - rankB, nil
}
