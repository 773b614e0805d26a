// Package config loads and validates the optional .snipexec YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/snipexec/eval"
	"github.com/jonwraymond/snipexec/host"
)

// DefaultLogLevel is used when no log level is configured.
const DefaultLogLevel = "info"

// Config holds the parsed .snipexec configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	Version        int       `yaml:"version"`
	RawEngine      string    `yaml:"engine"`       // registered engine name, e.g. "statement"
	RawMaxRuntimes int       `yaml:"max_runtimes"` // live runtime cap
	Log            LogConfig `yaml:"log"`
}

// LogConfig controls server logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// EngineName returns the configured engine name or the default.
// The name is resolved against the engine registry by the caller.
func (c *Config) EngineName() string {
	if c.RawEngine != "" {
		return c.RawEngine
	}
	return eval.DefaultEngineName
}

// MaxRuntimes returns the configured runtime cap or the default.
func (c *Config) MaxRuntimes() int {
	if c.RawMaxRuntimes > 0 {
		return c.RawMaxRuntimes
	}
	return host.DefaultMaxRuntimes
}

// LogLevel returns the configured log level or the default.
// Unrecognized levels fall back to the default.
func (c *Config) LogLevel() string {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		return c.Log.Level
	}
	return DefaultLogLevel
}

// LoadResult holds the parsed config and the discovered repository root.
type LoadResult struct {
	Config   *Config
	RepoRoot string // directory containing go.mod; falls back to workspace
}

// Load reads the .snipexec file from the repository root.
// The repository root is discovered by walking upward from workspace
// looking for go.mod. If no .snipexec file exists, a default Config is
// returned.
func Load(workspace string) (*LoadResult, error) {
	root, err := findRepoRoot(workspace)
	if err != nil {
		// No go.mod found; use workspace as root.
		root = workspace
	}

	path := filepath.Join(root, ".snipexec")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadResult{Config: &Config{}, RepoRoot: root}, nil
		}
		return nil, fmt.Errorf("reading .snipexec: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing .snipexec: %w", err)
	}
	return &LoadResult{Config: cfg, RepoRoot: root}, nil
}

// findRepoRoot walks upward from dir looking for a directory containing go.mod.
func findRepoRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}
