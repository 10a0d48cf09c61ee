// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "IMAGE_VIEWS_LOG_LEVEL"
	EnvOutputDir = "IMAGE_VIEWS_OUTPUT_DIR"
)

// Config holds settings shared by every command.
type Config struct {
	// LogLevel is "info" unless set to "debug".
	LogLevel string

	// OutputDir is where derived views are written. Empty means views are
	// not written.
	OutputDir string
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Load reads .env files (if present) into the process environment and
// returns the resulting configuration. With no arguments it reads ".env" in
// the working directory.
//
// Files are read in order and each one is loaded on its own, so a missing
// file never hides the ones after it. Variables already set, by the
// environment or by an earlier file, are not overridden. A file that exists
// but cannot be parsed is an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	level := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
	if level == "" {
		level = "info"
	}
	return &Config{
		LogLevel:  level,
		OutputDir: os.Getenv(EnvOutputDir),
	}
}
