// Command vrh reads a point cloud, thresholds it to a neighborhood graph,
// builds the Vietoris-Rips complex up to a chosen dimension, and reports
// Betti numbers (plus beta_0, the connected-component count).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrh/internal/components"
	"github.com/katalvlaran/vrh/internal/distance"
	"github.com/katalvlaran/vrh/internal/homology"
	"github.com/katalvlaran/vrh/internal/ingest"
	"github.com/katalvlaran/vrh/internal/neighborhood"
	"github.com/katalvlaran/vrh/internal/rips"
	"github.com/katalvlaran/vrh/internal/viz"
	"github.com/katalvlaran/vrh/internal/vrhcfg"
	"github.com/katalvlaran/vrh/internal/vrhlog"
)

func main() {
	cfg := vrhcfg.Default()

	configPath := flag.String("config", "", "YAML config file (flags below override it)")
	input := flag.String("input", "", "CSV point-cloud path (default: stdin)")
	metric := flag.String("metric", "", "euclidean or manhattan")
	eps := flag.Float64("eps", 0, "neighborhood epsilon (strictly-less-than)")
	k := flag.Int("k", 0, "dimension bound: simplices up to dimension k-1 are built")
	betti := flag.String("betti", "", "comma-separated dimensions to report, e.g. 1,2")
	dot := flag.String("dot", "", "optional path to write a GraphViz DOT export")
	flag.Parse()

	if *configPath != "" {
		if err := vrhcfg.Load(*configPath, &cfg); err != nil {
			fatal(err)
		}
	}
	applyFlagOverrides(&cfg, *input, *metric, *eps, *k, *betti, *dot)

	if err := run(cfg); err != nil {
		fatal(err)
	}
}

func applyFlagOverrides(cfg *vrhcfg.Config, input, metric string, eps float64, k int, betti, dot string) {
	if input != "" {
		cfg.Input = input
	}
	if metric != "" {
		cfg.Metric = metric
	}
	if eps != 0 {
		cfg.Epsilon = eps
	}
	if k != 0 {
		cfg.K = k
	}
	if betti != "" {
		cfg.Betti = parseBettiList(betti)
	}
	if dot != "" {
		cfg.DOT = dot
	}
}

func parseBettiList(s string) []int {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func run(cfg vrhcfg.Config) error {
	var metric distance.Metric
	switch cfg.Metric {
	case "manhattan":
		metric = distance.Manhattan
	default:
		metric = distance.Euclidean
	}

	src, closeSrc, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer closeSrc()

	points, err := ingest.ReadPoints(src)
	if err != nil {
		return err
	}

	dist, err := distance.BuildMatrix(points, metric)
	if err != nil {
		return err
	}

	adj, err := neighborhood.ToAdjacency(dist, cfg.Epsilon)
	if err != nil {
		return err
	}

	vrhlog.Log.Info().Int("n", len(points)).Float64("eps", cfg.Epsilon).Int("k", cfg.K).Msg("vrh: building complex")
	complex, err := rips.Build(adj, cfg.K, 0, rips.Inductive)
	if err != nil {
		return err
	}

	beta0 := components.Count(adj)
	fmt.Printf("beta_0 = %d\n", beta0)
	for _, p := range cfg.Betti {
		if p <= 0 {
			continue
		}
		b, err := homology.Betti(complex, p)
		if err != nil {
			return err
		}
		fmt.Printf("beta_%d = %d\n", p, b)
	}

	if cfg.DOT != "" {
		return writeDOT(cfg.DOT, complex)
	}
	return nil
}

func openInput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("vrh: opening %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeDOT(path string, complex *rips.Complex) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vrh: creating %s: %w", path, err)
	}
	defer f.Close()
	return viz.WriteDOT(f, complex)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "vrh:", err)
	os.Exit(1)
}
