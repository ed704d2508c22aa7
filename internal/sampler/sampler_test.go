package sampler_test

import (
	"testing"

	"github.com/katalvlaran/vrh/internal/sampler"
	"github.com/stretchr/testify/require"
)

func TestUniformDeterministic(t *testing.T) {
	a := sampler.Uniform(10, 2, 5.0, 42)
	b := sampler.Uniform(10, 2, 5.0, 42)
	require.Equal(t, a, b)
}

func TestUniformShapeAndRange(t *testing.T) {
	pts := sampler.Uniform(5, 3, 2.0, 7)
	require.Len(t, pts, 5)
	for _, p := range pts {
		require.Len(t, p, 3)
		for _, c := range p {
			require.GreaterOrEqual(t, c, 0.0)
			require.LessOrEqual(t, c, 2.0)
		}
	}
}

func TestUniformZeroSeedDeterministic(t *testing.T) {
	a := sampler.Uniform(4, 2, 1.0, 0)
	b := sampler.Uniform(4, 2, 1.0, 0)
	require.Equal(t, a, b)
}
