package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logLevel(" WARN "))
	assert.Equal(t, slog.LevelWarn, logLevel("warning"))
	assert.Equal(t, slog.LevelError, logLevel("error"))
	assert.Equal(t, slog.LevelInfo, logLevel(""))
	assert.Equal(t, slog.LevelInfo, logLevel("verbose"))
}
