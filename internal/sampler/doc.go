// Package sampler generates random point clouds for benchmarks, using a
// deterministic-seed RNG convention (seed == 0 maps to a fixed default
// seed) with math/rand rather than a third-party generator.
package sampler
