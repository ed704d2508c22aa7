// Package vrhcfg holds the CLI/batch configuration for cmd/vrh: the
// filtration epsilon, skeleton dimension, metric, and I/O paths, loadable
// either from flags or from a YAML file via gopkg.in/yaml.v3 (matching
// itohio/EasyRobot's x/marshaller/yaml-based config loading), so batch or
// benchmark runs can pin parameters without retyping flags each time.
package vrhcfg
