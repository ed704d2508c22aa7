// Package distance provides the pluggable metric the core's boundary
// consumes only through its produced distance matrix: a tagged-variant
// Metric enum (Euclidean, Manhattan) dispatched via a switch, mirroring the
// MatchingAlgo/BoundAlgo enum-dispatch style used for solver selection
// elsewhere in this lineage, plus a BuildMatrix function that calls the
// selected metric once per ordered point pair.
package distance
