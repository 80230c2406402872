package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	t.Setenv("AOC_TESTS_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("AOC_TESTS_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tests_dir: inputs\nlogging:\n  level: debug\n"), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.TestsDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("AOC_TESTS_DIR", "/tmp/aoc")
	t.Setenv("AOC_LOG_LEVEL", "warn")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/aoc", cfg.TestsDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("AOC_TESTS_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	dir := t.TempDir()
	tests := map[string]string{
		"syntax": "tests_dir: [\n",
		"level":  "logging:\n  level: loud\n",
		"format": "logging:\n  format: xml\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("AOC_TESTS_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "aoc.yaml")
	cfg := DefaultConfig()
	cfg.TestsDir = "puzzles"
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))
	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}
