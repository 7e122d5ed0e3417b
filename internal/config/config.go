// Package config resolves solflat settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "SOLFLAT_LOG_LEVEL"
	EnvPort      = "SOLFLAT_PORT"
	EnvMaxDepth  = "SOLFLAT_MAX_DEPTH"
	EnvCacheSize = "SOLFLAT_CACHE_SIZE"
)

// DefaultEnvFile is read when no env file is named explicitly. It may be absent.
const DefaultEnvFile = ".env"

// Config holds defaults for command flags.
type Config struct {
	LogLevel  slog.Level
	Port      int
	MaxDepth  int
	CacheSize int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelWarn,
		Port:      4900,
		MaxDepth:  0,
		CacheSize: 16,
	}
}

// Load resolves the configuration. Process environment variables win over values
// from envFile. An empty envFile means DefaultEnvFile, which is skipped if missing.
func Load(envFile string) (Config, error) {
	fileValues, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := ParseLogLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	for _, setting := range []struct {
		key string
		dst *int
		min int
	}{
		{EnvPort, &cfg.Port, 1},
		{EnvMaxDepth, &cfg.MaxDepth, 0},
		{EnvCacheSize, &cfg.CacheSize, 1},
	} {
		v, ok := lookup(setting.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", setting.key, err)
		}
		if n < setting.min {
			return Config{}, fmt.Errorf("invalid %s: must be at least %d", setting.key, setting.min)
		}
		*setting.dst = n
	}

	return cfg, nil
}

func readEnvFile(envFile string) (map[string]string, error) {
	optional := envFile == ""
	if optional {
		envFile = DefaultEnvFile
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}
	return values, nil
}

// ParseLogLevel maps debug, info, warn or error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}
	return level, nil
}
