package logger

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/shared/config"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		from       slog.Level
		level      slog.Level
		wantSource bool
	}{
		{name: "info below warn threshold", from: slog.LevelWarn, level: slog.LevelInfo, wantSource: false},
		{name: "warn at threshold", from: slog.LevelWarn, level: slog.LevelWarn, wantSource: true},
		{name: "error above threshold", from: slog.LevelWarn, level: slog.LevelError, wantSource: true},
		{name: "debug threshold covers info", from: slog.LevelDebug, level: slog.LevelInfo, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(NewSourceHandler(base, tt.from))

			l.Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandler_WithAttrsKeepsThreshold(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewSourceHandler(base, slog.LevelWarn)).With("component", "test")

	l.Warn("careful")
	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "source=")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInit_FileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warden.log")
	require.NoError(t, Init(config.LoggerConfig{Level: "debug", Format: "json", OutputPath: path}, false))
	t.Cleanup(func() { Logger = nil })

	NewLogger().Named("probe").Infow("hello", "k", "v")
	assert.FileExists(t, path)
}

func TestNamed_ComposesDottedName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Named("http").With("request_id", "r1").Named("user.handler").Infow("created", "id", 7)

	out := buf.String()
	assert.Contains(t, out, "logger=http.user.handler")
	assert.Contains(t, out, "request_id=r1")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("logger=")), out)
}

func TestInterface_SourcePointsAtCaller(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := NewLoggerWithSlog(slog.New(NewSourceHandler(base, slog.LevelWarn)))

	l.Warnw("careful")
	assert.Contains(t, buf.String(), "logger_test.go")
}
