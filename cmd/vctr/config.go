// Config loading for the vctr CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ijlyttle/vctrs/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir = "data_dir"
	cfgKeyMaxRows = "max_rows"
	cfgKeyNoColor = "no_color"

	defaultMaxRows = 10
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# vctr CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Rows shown by the table viewer before truncation
max_rows: 10

# Disable styled output
no_color: false
`

// cliConfigValues are the settings subcommands read.
type cliConfigValues struct {
	dataDir string
	maxRows int
	noColor bool
}

func defaultCLIConfig() cliConfigValues {
	return cliConfigValues{maxRows: defaultMaxRows}
}

// loadCLIConfig reads config.yaml from the resolved config directory
// using Viper, creating the directory and a default file on first run.
// A missing config.yaml is not an error.
func loadCLIConfig(configDirFlag string) (cliConfigValues, error) {
	cfg := defaultCLIConfig()

	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return cfg, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return cfg, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cfg, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyMaxRows, defaultMaxRows)
	v.SetDefault(cfgKeyNoColor, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.dataDir = v.GetString(cfgKeyDataDir)
	cfg.maxRows = v.GetInt(cfgKeyMaxRows)
	cfg.noColor = v.GetBool(cfgKeyNoColor)
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
