package config

import (
	"errors"

	"autotiler/pkg/core"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the application configuration.
type Config struct {
	// Configurable via TOML file (private fields to enforce immutability)
	terminals     []string
	queueSize     int
	eventBuffer   int
	socketPath    string
	notifyOnError bool
	notifyCommand string

	// Internal fields
	log  core.Logger
	path string
}

// fileConfig mirrors the on-disk layout.
type fileConfig struct {
	Terminals     []string `toml:"terminals"`
	QueueSize     int      `toml:"queue_size"`
	EventBuffer   int      `toml:"event_buffer"`
	SocketPath    string   `toml:"socket_path"`
	NotifyOnError bool     `toml:"notify_on_error"`
	NotifyCommand string   `toml:"notify_command"`
}

func (c *Config) toFile() fileConfig {
	return fileConfig{
		Terminals:     c.Terminals(),
		QueueSize:     c.queueSize,
		EventBuffer:   c.eventBuffer,
		SocketPath:    c.socketPath,
		NotifyOnError: c.notifyOnError,
		NotifyCommand: c.notifyCommand,
	}
}

// Terminals returns a copy of the recognized terminal names.
func (c *Config) Terminals() []string {
	return append([]string(nil), c.terminals...)
}

// QueueSize returns the capacity of the split command queue.
func (c *Config) QueueSize() int {
	return c.queueSize
}

// EventBuffer returns how many focus events may wait behind a tree fetch.
func (c *Config) EventBuffer() int {
	return c.eventBuffer
}

// SocketPath returns the IPC socket override, empty for auto-detection.
func (c *Config) SocketPath() string {
	return c.socketPath
}

// NotifyOnError reports whether fatal errors raise a desktop notification.
func (c *Config) NotifyOnError() bool {
	return c.notifyOnError
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// WithSocketPath returns a copy of c using path as the IPC socket.
func (c *Config) WithSocketPath(path string) *Config {
	cp := *c
	cp.terminals = c.Terminals()
	cp.socketPath = path
	return &cp
}
