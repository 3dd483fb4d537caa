package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 256, "workers": 3}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Resolve(Flags{})
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 256, cfg.Height) // defaults to width
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 1, cfg.Supersample)
	assert.Equal(t, "out.png", cfg.Output)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := Config{Width: 256, Output: "from-config.png"}
	cfg.Resolve(Flags{Width: 1024, Output: "from-flag.webp", Supersample: 2})

	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, "from-flag.webp", cfg.Output)
	assert.Equal(t, 2, cfg.Supersample)
}

func TestDefaultWorkers(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
