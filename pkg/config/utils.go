package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"autotiler/pkg/core"
)

const (
	configDirName  = "autotiler"
	configFileName = "config.toml"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/autotiler/config.toml, creating the
// directory if needed.
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(configDirName, configFileName))
}

// FindConfig locates and loads the configuration:
// 1. Uses provided path if specified; failures are returned
// 2. Uses $XDG_CONFIG_HOME/autotiler/config.toml, writing defaults there if missing
// 3. Falls back to defaults if that file cannot be parsed
func FindConfig(providedPath string, log core.Logger) (*Config, error) {
	log.Info("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		log.Error("Failed to resolve config directory", err)
		return nil, err
	}
	return findAt(defaultPath, log)
}

func findAt(path string, log core.Logger) (*Config, error) {
	log.Debug("Configuration path", "config_path", path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return writeDefault(path, log)
	}

	config, err := loadConfigFromPath(path, log)
	if err != nil {
		log.Warn("Falling back to default configuration", "path", path, "error", err.Error())
		return DefaultConfig(log), nil
	}
	return config, nil
}
