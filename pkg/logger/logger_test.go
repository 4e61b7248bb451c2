package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithWriter(&buf), WithoutFile(), WithLevel(zerolog.DebugLevel))
	require.NoError(t, err)

	log.Debug("focus event", "name", "Alacritty", "tabbed_parent", false)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "focus event", entry["message"])
	assert.Equal(t, "Alacritty", entry["name"])
	assert.Equal(t, false, entry["tabbed_parent"])
	assert.Equal(t, "logger_test.go", entry["file"])
}

func TestLoggerErrorAndOddFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithWriter(&buf), WithoutFile())
	require.NoError(t, err)

	log.Error("submit failed", errors.New("boom"), "command", "split vertical", "dangling")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "split vertical", entry["command"])
	assert.NotContains(t, entry, "dangling")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(WithWriter(&buf), WithoutFile(), WithLevel(zerolog.WarnLevel))
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "autotiler.log")
	log, err := NewLogger(WithFile(path))
	require.NoError(t, err)

	log.Info("started", "pid", 42)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "started"))
	assert.NotContains(t, string(data), "\x1b[", "file output must not be colored")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	log.Error("ignored", errors.New("x"))
	assert.NoError(t, log.Close())
}
