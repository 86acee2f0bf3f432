// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the color profile to use when writing to w.
// It returns Ascii if NO_COLOR is set or if w is a file that is not a terminal,
// so that piped output stays free of escape sequences.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
