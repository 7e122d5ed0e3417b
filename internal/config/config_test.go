package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solflat.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenNothingIsSet(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := writeEnvFile(t, "SOLFLAT_LOG_LEVEL=debug\nSOLFLAT_PORT=5000\nSOLFLAT_MAX_DEPTH=64\nSOLFLAT_CACHE_SIZE=4\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: slog.LevelDebug, Port: 5000, MaxDepth: 64, CacheSize: 4}, cfg)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "SOLFLAT_PORT=5000\n")
	t.Setenv(EnvPort, "6000")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Port)
}

func TestLoad_ExplicitEnvFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read env file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"log level", "SOLFLAT_LOG_LEVEL=loud\n", "invalid SOLFLAT_LOG_LEVEL"},
		{"port not a number", "SOLFLAT_PORT=http\n", "invalid SOLFLAT_PORT"},
		{"port out of range", "SOLFLAT_PORT=0\n", "invalid SOLFLAT_PORT: must be at least 1"},
		{"negative depth", "SOLFLAT_MAX_DEPTH=-1\n", "invalid SOLFLAT_MAX_DEPTH: must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeEnvFile(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel(" INFO ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLogLevel("verbose")
	require.Error(t, err)
}
