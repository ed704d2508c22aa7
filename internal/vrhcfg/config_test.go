package vrhcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/vrh/internal/vrhcfg"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := vrhcfg.Default()
	require.Equal(t, "euclidean", cfg.Metric)
	require.Equal(t, 1.0, cfg.Epsilon)
	require.Equal(t, 3, cfg.K)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vrh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epsilon: 2.5\nk: 4\n"), 0o644))

	cfg := vrhcfg.Default()
	require.NoError(t, vrhcfg.Load(path, &cfg))

	require.Equal(t, 2.5, cfg.Epsilon)
	require.Equal(t, 4, cfg.K)
	require.Equal(t, "euclidean", cfg.Metric) // untouched
}

func TestLoadMissingFile(t *testing.T) {
	cfg := vrhcfg.Default()
	err := vrhcfg.Load("/nonexistent/path.yaml", &cfg)
	require.Error(t, err)
}
