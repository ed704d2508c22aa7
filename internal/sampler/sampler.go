package sampler

import (
	"math/rand"

	"github.com/katalvlaran/vrh/internal/distance"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed == 0 maps to
// defaultSeed, any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Uniform generates n points uniformly distributed in [0, side]^dim, using
// a deterministic RNG derived from seed (seed == 0 gives a fixed default
// stream). Intended for benchmarks and examples, never for algorithmic
// correctness.
func Uniform(n, dim int, side float64, seed int64) []distance.Vec {
	r := rngFromSeed(seed)
	points := make([]distance.Vec, n)
	for i := range points {
		p := make(distance.Vec, dim)
		for j := range p {
			p[j] = r.Float64() * side
		}
		points[i] = p
	}
	return points
}
