package xlogger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Text handler writes to output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "info", LogType: "text", Output: &buf})

		logger.Info("index built", slog.Int("prefixes", 4))
		logger.Debug("hidden")

		assert.Contains(t, buf.String(), "index built")
		assert.Contains(t, buf.String(), "prefixes=4")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("JSON handler", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "debug", LogType: "JSON", Output: &buf})

		logger.Debug("generation finished", slog.Bool("truncated", true))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "generation finished", record["msg"])
		assert.Equal(t, true, record["truncated"])
		assert.Equal(t, "DEBUG", record["level"])
	})

	t.Run("Handler types", func(t *testing.T) {
		assert.IsType(t, &slog.JSONHandler{}, New(Config{LogType: "json"}).Handler())
		assert.IsType(t, &slog.TextHandler{}, New(Config{LogType: "text"}).Handler())
		assert.IsType(t, &slog.TextHandler{}, New(Config{LogType: "unknown"}).Handler())
	})

	t.Run("Source path is trimmed", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{LogType: "text", AddSource: true, SourcePath: "xlogger/", Output: &buf})

		logger.Info("with source")
		assert.Contains(t, buf.String(), "source=logger_test.go:")
	})
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{name: "Debug level", logLevel: "debug", expected: slog.LevelDebug},
		{name: "Info level", logLevel: "info", expected: slog.LevelInfo},
		{name: "Warn level", logLevel: "warn", expected: slog.LevelWarn},
		{name: "Error level", logLevel: "error", expected: slog.LevelError},
		{name: "Default level for unknown input", logLevel: "unknown", expected: slog.LevelInfo},
		{name: "Case insensitive level", logLevel: "DEBUG", expected: slog.LevelDebug},
		{name: "Empty level string", logLevel: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.logLevel))
		})
	}
}

func TestReplaceAttr(t *testing.T) {
	source := &slog.Source{
		File: "/home/build/src/github.com/vitalvas/markovtext/markov/generator.go",
		Line: 42,
	}

	tests := []struct {
		name     string
		conf     Config
		attr     slog.Attr
		expected slog.Attr
	}{
		{
			name:     "Relative source path",
			conf:     Config{SourcePath: "github.com/vitalvas/markovtext/"},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String(slog.SourceKey, "markov/generator.go:42"),
		},
		{
			name:     "Absolute source path",
			conf:     Config{SourcePath: "/home/build/src/github.com/vitalvas/markovtext/"},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String(slog.SourceKey, "markov/generator.go:42"),
		},
		{
			name:     "No source path",
			conf:     Config{},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String(slog.SourceKey, "/home/build/src/github.com/vitalvas/markovtext/markov/generator.go:42"),
		},
		{
			name:     "Non-source attribute remains unchanged",
			conf:     Config{},
			attr:     slog.String("seed", "it was"),
			expected: slog.String("seed", "it was"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, replaceAttr(tt.conf)(nil, tt.attr))
		})
	}
}
