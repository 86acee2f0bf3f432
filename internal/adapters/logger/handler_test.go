package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/squeeze/internal/adapters/logger"
)

func TestLineHandler_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "watch mode stopped\n"},
		{name: "warn", level: slog.LevelWarn, want: "! watch mode stopped\n"},
		{name: "error", level: slog.LevelError, want: "✗ watch mode stopped\n"},
		{name: "unknown level renders like info", level: slog.Level(2), want: "watch mode stopped\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(logger.NewLineHandler(&buf, slog.LevelInfo))

			log.Log(context.Background(), tt.level, "watch mode stopped")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLineHandler_FiltersBelowLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewLineHandler(&buf, slog.LevelWarn))

	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")
	assert.Equal(t, "! shown\n", buf.String())
}

func TestLineHandler_IgnoresAttributes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewLineHandler(&buf, slog.LevelInfo)).With("file", "main.css").WithGroup("g")

	log.Info("processed", "bytes", 12)
	assert.Equal(t, "processed\n", buf.String())
}
