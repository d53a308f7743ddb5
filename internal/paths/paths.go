// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".vctrs"
	DefaultDataDirName   = ".vctrs-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "VCTRS_CONFIG_DIR"
	EnvDataDir   = "VCTRS_DATA_DIR"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > VCTRS_CONFIG_DIR env > $(CWD)/.vctrs.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml value > VCTRS_DATA_DIR env >
// $(CWD)/.vctrs-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
