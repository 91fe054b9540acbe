package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the per-project configuration directory
	ConfigDirName = ".foldermatch"
	// ConfigFileName is the configuration file inside ConfigDirName
	ConfigFileName = "config.yaml"
)

// FindConfigFile looks for .foldermatch/config.yaml in startDir and each of
// its parents, returning the first one found.
// Returns an empty path and no error when no config file exists up to the
// filesystem root.
func FindConfigFile(startDir string) (string, error) {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(current, ConfigDirName, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", nil
		}
		current = parent
	}
}

// Resolve loads the configuration for a command invocation. An explicit
// path must exist; otherwise the nearest config above startDir is used,
// falling back to defaults.
func Resolve(explicitPath string, startDir string) (*Config, string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, "", fmt.Errorf("config file %s: %w", explicitPath, err)
		}
		cfg, err := LoadConfig(explicitPath)
		return cfg, explicitPath, err
	}

	found, err := FindConfigFile(startDir)
	if err != nil {
		return nil, "", err
	}
	if found == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := LoadConfig(found)
	return cfg, found, err
}
