package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutputDir, "")

	cfg := FromEnv()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug())
	assert.Empty(t, cfg.OutputDir)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, " DEBUG ")
	t.Setenv(EnvOutputDir, "/tmp/views")

	cfg := FromEnv()

	assert.True(t, cfg.Debug())
	assert.Equal(t, "/tmp/views", cfg.OutputDir)
}

func TestLoad_EnvFile(t *testing.T) {
	// Register cleanup for both variables, then unset them so the file applies.
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutputDir, "")
	os.Unsetenv(EnvLogLevel)
	os.Unsetenv(EnvOutputDir)

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte(
		EnvLogLevel+"=debug\n"+EnvOutputDir+"=/data/out\n"), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.True(t, cfg.Debug())
	assert.Equal(t, "/data/out", cfg.OutputDir)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	t.Setenv(EnvOutputDir, "/from/env")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte(EnvOutputDir+"=/from/file\n"), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.OutputDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_MissingFileDoesNotSkipLaterFiles(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	os.Unsetenv(EnvOutputDir)

	dir := t.TempDir()
	present := filepath.Join(dir, "present.env")
	require.NoError(t, os.WriteFile(present, []byte(EnvOutputDir+"=/from/second\n"), 0644))

	cfg, err := Load(filepath.Join(dir, "missing.env"), present)
	require.NoError(t, err)
	assert.Equal(t, "/from/second", cfg.OutputDir)
}

func TestLoad_EarlierFileWins(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	os.Unsetenv(EnvOutputDir)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte(EnvOutputDir+"=/from/first\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte(EnvOutputDir+"=/from/second\n"), 0644))

	cfg, err := Load(first, second)
	require.NoError(t, err)
	assert.Equal(t, "/from/first", cfg.OutputDir)
}
