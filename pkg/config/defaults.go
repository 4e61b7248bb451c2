package config

import "autotiler/pkg/core"

const (
	DefaultQueueSize   = 10
	DefaultEventBuffer = 10
)

// DefaultTerminals are the window names treated as terminals.
var DefaultTerminals = []string{"Alacritty", "xterm"}

// DefaultConfig creates a default configuration.
func DefaultConfig(log core.Logger) *Config {
	log.Debug("Creating default configuration")

	return &Config{
		terminals:   append([]string(nil), DefaultTerminals...),
		queueSize:   DefaultQueueSize,
		eventBuffer: DefaultEventBuffer,
		log:         log,
	}
}
