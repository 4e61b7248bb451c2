package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"autotiler/pkg/core"
)

// LoadFromFile loads the configuration from a TOML file. Keys missing from the
// file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	log := c.log
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	temp := c.toFile()
	md, err := toml.Decode(string(data), &temp)
	if err != nil {
		log.Error("Failed to parse config TOML", err, "path", path)
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warn("Ignoring unknown config keys", "keys", fmt.Sprint(undecoded))
	}

	if err := temp.validate(); err != nil {
		log.Error("Config validation failed", err, "path", path)
		return err
	}

	c.terminals = temp.Terminals
	c.queueSize = temp.QueueSize
	c.eventBuffer = temp.EventBuffer
	c.socketPath = temp.SocketPath
	c.notifyOnError = temp.NotifyOnError
	c.notifyCommand = temp.NotifyCommand
	c.path = path
	return nil
}

func (f fileConfig) validate() error {
	if f.QueueSize < 1 {
		return fmt.Errorf("%w: queue_size must be at least 1, got %d", ErrInvalid, f.QueueSize)
	}
	if f.EventBuffer < 1 {
		return fmt.Errorf("%w: event_buffer must be at least 1, got %d", ErrInvalid, f.EventBuffer)
	}
	for i, name := range f.Terminals {
		if name == "" {
			return fmt.Errorf("%w: terminals[%d] is empty", ErrInvalid, i)
		}
	}
	return nil
}

// loadConfigFromPath loads the configuration from a file on top of the defaults.
func loadConfigFromPath(path string, log core.Logger) (*Config, error) {
	config := DefaultConfig(log)
	if err := config.LoadFromFile(path); err != nil {
		return nil, err
	}
	return config, nil
}

// writeDefault stores the default configuration at path.
func writeDefault(path string, log core.Logger) (*Config, error) {
	config := DefaultConfig(log)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config.toFile()); err != nil {
		return nil, fmt.Errorf("failed to write default config: %w", err)
	}
	config.path = path

	log.Info("Wrote default configuration", "path", path)
	return config, nil
}
