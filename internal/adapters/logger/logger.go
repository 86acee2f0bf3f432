// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/squeeze/internal/ui/style"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger instance writing to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr)),
	}
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w))
}

func newHandler(w io.Writer) slog.Handler {
	return newLineHandler(w, slog.LevelInfo)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message, rendering wrapped causes one per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatMessages(collectMessages(err)))
}

// collectMessages walks the error chain. zerr errors contribute their own message
// and the walk continues; the first standard error contributes its full text and ends it.
func collectMessages(err error) []string {
	var messages []string
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	return messages
}

// formatMessages lays the collected messages out as a headline and its causes.
func formatMessages(messages []string) string {
	lines := make([]string, 0, len(messages)+2)

	for i, msg := range messages {
		parts := strings.Split(msg, "\n")

		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		case 1:
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, "    "+style.Arrow+" "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
