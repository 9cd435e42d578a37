package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "WARNING", "poller")

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warning("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[poller] WARNING: shown 3")
	assert.Contains(t, out, "[poller] ERROR: shown 4")
}

func TestLogger_NamedSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	root := NewLoggerWithWriter(&buf, "DEBUG", "app")
	child := root.Named("server")

	child.Debug("listening")
	require.Contains(t, buf.String(), "[server] DEBUG: listening")
}

func TestLogger_CriticalExits(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "INFO", "app")
	code := -1
	l.exit = func(c int) { code = c }

	l.Critical("boom")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "CRITICAL: boom")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarning, ParseLevel(" warn "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))

	assert.True(t, ValidLevel("critical"))
	assert.False(t, ValidLevel("verbose"))
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("nothing") })
}
