package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(OutputDirEnv, "")
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.Verbose)
}

func TestDefaultConfig_EnvOverride(t *testing.T) {
	t.Setenv(OutputDirEnv, "/tmp/skylark")
	cfg := DefaultConfig()
	assert.Equal(t, "/tmp/skylark", cfg.OutputDir)
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	cfg := &Config{OutputDir: dir}
	require.NoError(t, cfg.EnsureOutputDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureOutputDir_CurrentDir(t *testing.T) {
	cfg := &Config{OutputDir: "."}
	assert.NoError(t, cfg.EnsureOutputDir())
}
