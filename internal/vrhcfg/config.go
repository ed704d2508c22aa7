package vrhcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of parameters a cmd/vrh run needs, loadable from a
// YAML file and overridable by flags.
type Config struct {
	// Input is the CSV point-cloud path. Empty means read from stdin.
	Input string `yaml:"input"`
	// Metric selects "euclidean" or "manhattan"; see distance.Metric.
	Metric string `yaml:"metric"`
	// Epsilon is the neighborhood threshold (strictly-less-than).
	Epsilon float64 `yaml:"epsilon"`
	// K is the dimension bound passed to rips.Build: simplices up to
	// dimension K-1 are constructed.
	K int `yaml:"k"`
	// Betti lists the dimensions to report Betti numbers for.
	Betti []int `yaml:"betti"`
	// DOT is an optional path to write a GraphViz 1-skeleton export to.
	DOT string `yaml:"dot"`
}

// Default returns the configuration cmd/vrh falls back to absent any flags
// or config file.
func Default() Config {
	return Config{
		Metric:  "euclidean",
		Epsilon: 1.0,
		K:       3,
		Betti:   []int{1},
	}
}

// Load reads a YAML config file at path into cfg, overwriting only the
// fields present in the document (fields whose keys are absent keep cfg's
// current values, since yaml.v3 skips absent keys by default).
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("vrhcfg: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("vrhcfg: parsing %s: %w", path, err)
	}
	return nil
}
