// Package config loads the optional per-project decomment configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// configNames are the file names probed in the scan root, in order.
var configNames = []string{".decomment.yml", ".decomment.yaml"}

// DefaultIgnoreDirs are directory names never descended into.
var DefaultIgnoreDirs = []string{
	".git",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	"__pycache__",
}

// Config controls which files a scan touches.
type Config struct {
	// IgnoreDirs extends the default directory skip list.
	IgnoreDirs []string `yaml:"ignore_dirs"`
	// IgnorePatterns are doublestar globs matched against slash-separated
	// paths relative to the scan root.
	IgnorePatterns []string `yaml:"ignore_patterns"`
	// Extensions, when non-empty, restricts processing to these file
	// extensions (with or without the leading dot).
	Extensions []string `yaml:"extensions"`
	// Backup writes <path>.bak before overwriting a file.
	Backup bool `yaml:"backup"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{}
}

// Load reads the project configuration from dir. A missing file yields
// the defaults; a malformed one is an error.
func Load(dir string) (*Config, error) {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		cfg := Default()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
	return Default(), nil
}

// SkipDir reports whether a directory with this name should be skipped.
// Dot-directories and the default ignore list are always skipped.
func (c *Config) SkipDir(name string) bool {
	if name != "" && name[0] == '.' {
		return true
	}
	for _, ignored := range DefaultIgnoreDirs {
		if name == ignored {
			return true
		}
	}
	for _, ignored := range c.IgnoreDirs {
		if name == ignored {
			return true
		}
	}
	return false
}

// Excluded reports whether the root-relative path matches an ignore
// pattern. Invalid patterns are treated as non-matching.
func (c *Config) Excluded(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range c.IgnorePatterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// WantsFile reports whether a file with this name is a candidate.
// Backup files are never candidates; an extension allowlist, when
// configured, must match.
func (c *Config) WantsFile(name string) bool {
	if strings.HasSuffix(name, ".bak") {
		return false
	}
	if len(c.Extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, allowed := range c.Extensions {
		if strings.TrimPrefix(allowed, ".") == ext {
			return true
		}
	}
	return false
}
