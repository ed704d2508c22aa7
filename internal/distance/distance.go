package distance

import (
	"errors"
	"math"

	"github.com/katalvlaran/vrh/internal/matrix"
)

// Metric selects the pairwise distance function used to build a distance
// matrix from point-cloud vectors.
type Metric int

const (
	// Euclidean computes sqrt(sum((a_i - b_i)^2)).
	Euclidean Metric = iota

	// Manhattan computes sum(|a_i - b_i|).
	Manhattan
)

// ErrUnsupportedMetric is returned when Compute (and so BuildMatrix) is
// asked for a Metric this package does not implement.
var ErrUnsupportedMetric = errors.New("distance: unsupported metric")

// ErrDimensionMismatch is returned when two points in the cloud have
// different coordinate counts.
var ErrDimensionMismatch = errors.New("distance: point dimension mismatch")

// Vec is a point's coordinate vector.
type Vec []float64

// Compute applies m to a and b. Callers pass points of equal length;
// Compute does not itself validate length (BuildMatrix does, once, for the
// whole cloud).
func (m Metric) Compute(a, b Vec) (float64, error) {
	switch m {
	case Euclidean:
		return euclidean(a, b), nil
	case Manhattan:
		return manhattan(a, b), nil
	default:
		return 0, ErrUnsupportedMetric
	}
}

func euclidean(a, b Vec) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func manhattan(a, b Vec) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// BuildMatrix computes the full pairwise distance matrix for points under
// metric m, calling m.Compute once per ordered pair (including the
// diagonal, which is always 0). Returns ErrDimensionMismatch if any two
// points differ in coordinate count.
func BuildMatrix(points []Vec, m Metric) (matrix.Matrix[float64], error) {
	n := len(points)
	if n == 0 {
		return nil, errors.New("distance: empty point cloud")
	}
	dim := len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	dense, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d, err := m.Compute(points[i], points[j])
			if err != nil {
				return nil, err
			}
			if err := dense.Set(i, j, d); err != nil {
				return nil, err
			}
		}
	}
	return dense, nil
}
