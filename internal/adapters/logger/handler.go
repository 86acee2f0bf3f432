package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"go.trai.ch/squeeze/internal/ui/output"
	"go.trai.ch/squeeze/internal/ui/style"
)

// levelStyle is the prefix and colour a record level is rendered with.
type levelStyle struct {
	prefix string
	color  string
}

var levelStyles = map[slog.Level]levelStyle{
	slog.LevelInfo:  {color: string(style.Slate)},
	slog.LevelWarn:  {prefix: style.Warning + " ", color: string(style.Yellow)},
	slog.LevelError: {prefix: style.Cross + " ", color: string(style.Red)},
}

// lineHandler writes one coloured line per record.
// Every caller passes its full text in the message, so attributes are not rendered.
type lineHandler struct {
	out   *termenv.Output
	level slog.Level
}

func newLineHandler(w io.Writer, level slog.Level) *lineHandler {
	return &lineHandler{out: output.New(w), level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	ls, ok := levelStyles[r.Level]
	if !ok {
		ls = levelStyles[slog.LevelInfo]
	}

	line := h.out.String(ls.prefix + r.Message).Foreground(termenv.RGBColor(ls.color))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

func (h *lineHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *lineHandler) WithGroup(string) slog.Handler { return h }
