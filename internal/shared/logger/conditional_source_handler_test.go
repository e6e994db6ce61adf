package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	defaultLevels := []slog.Level{slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info hidden by default", slog.LevelInfo, defaultLevels, false},
		{"warn shown by default", slog.LevelWarn, defaultLevels, true},
		{"error shown by default", slog.LevelError, defaultLevels, true},
		{"debug hidden by default", slog.LevelDebug, defaultLevels, false},
		{
			name:             "info shown in debug mode",
			level:            slog.LevelInfo,
			showSourceLevels: []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(context.Background(), tt.level, "test message")

			assert.Equal(t, tt.shouldHaveSource, strings.Contains(buf.String(), "source="), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("registration_id", 42).
		WithGroup("request")

	log.Info("registration cancelled", "path", "/registrations/42")

	output := buf.String()
	assert.NotContains(t, output, "source=")
	assert.Contains(t, output, "registration_id=42")
	assert.Contains(t, output, "request.path=/registrations/42")
}

func TestConditionalSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
