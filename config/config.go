// Package config loads the optional sweep.config.toml file that seeds the
// default query and scan limits.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the parsed configuration file.
type Config struct {
	Files FilesConfig `toml:"files"`
}

// FilesConfig configures file selection.
type FilesConfig struct {
	// GlobFilter holds the default glob clauses, joined into the initial
	// glob query ("!"-prefixed clauses are exclusions).
	GlobFilter []string `toml:"glob_filter"`
	// Exclude holds extra ignore patterns merged with the defaults.
	Exclude []string `toml:"exclude"`
	// MaxSizeBytes caps the size of files that get scanned.
	MaxSizeBytes int64 `toml:"max_size_bytes"`
}

// configNames are the accepted file names, checked in order.
var configNames = []string{"sweep.config.toml", ".sweep.config.toml"}

// FindAndLoad walks from startDir up through its ancestors looking for a
// config file. It returns the parsed config and the path it was loaded from,
// or nil when no config file exists. A file that exists but does not parse
// is an error; silently ignoring it would make a typo look like a missing
// file.
func FindAndLoad(startDir string) (*Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			data, err := os.ReadFile(candidate)
			if err != nil {
				continue
			}
			cfg, err := Parse(data)
			if err != nil {
				return nil, "", fmt.Errorf("parsing %s: %w", candidate, err)
			}
			return cfg, candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}

// Parse decodes a TOML config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GlobQuery returns the configured glob clauses as a comma-joined query
// string, the form the filter engine consumes.
func (c *Config) GlobQuery() string {
	return strings.Join(c.Files.GlobFilter, ",")
}
