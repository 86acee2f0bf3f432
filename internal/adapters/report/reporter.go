// Package report provides the line-oriented console reporter of the minification pipelines.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/squeeze/internal/ui/output"
	"go.trai.ch/squeeze/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter. Progress goes to stdout, warnings and
// errors to stderr, one line per event.
type Reporter struct {
	mu     sync.Mutex
	stdout *termenv.Output
	stderr *termenv.Output
}

// NewReporter creates a new Reporter. Nil writers default to os.Stdout and os.Stderr.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	r := &Reporter{}
	r.SetOutput(stdout, stderr)
	return r
}

// SetOutput redirects the reporter. It must be called before the first report.
func (r *Reporter) SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stdout = output.New(stdout)
	r.stderr = output.New(stderr)
}

// RunStarted prints the batch header.
func (r *Reporter) RunStarted(kind domain.Kind) {
	r.printf(r.stdout, "%s\n",
		r.stdout.String(kind.Label()+" auto-discovery minification").Bold())
}

// SourceRootMissing warns that the source directory does not exist.
func (r *Reporter) SourceRootMissing(root string) {
	r.printf(r.stderr, "%s\n",
		r.stderr.String(style.Warning+" Directory not found: "+root).
			Foreground(termenv.RGBColor(string(style.Yellow))))
}

// NoFilesFound reports an empty discovery result.
func (r *Reporter) NoFilesFound(kind domain.Kind) {
	r.printf(r.stdout, "No %s files found.\n", kind.Ext())
}

// FileStarted reports that a source is being minified.
func (r *Reporter) FileStarted(src string) {
	prefix := r.stdout.String(style.Tilde).Faint()
	r.printf(r.stdout, "%s Minifying: %s\n", prefix, filepath.Base(src))
}

// FileFinished reports the outcome of a successfully processed source.
func (r *Reporter) FileFinished(result domain.WriteResult) {
	name := filepath.Base(result.Output)

	switch result.Status {
	case domain.StatusUpToDate:
		symbol := r.stdout.String(style.Check).Faint()
		r.printf(r.stdout, "%s Up to date: %s\n", symbol, name)
	case domain.StatusCreated, domain.StatusUpdated:
		symbol := r.stdout.String(style.Check).Foreground(termenv.ANSIGreen)
		line := fmt.Sprintf("%s Saved %.1f%% %s %s", symbol, result.SavedPercent(), style.Arrow, name)
		if result.Status == domain.StatusCreated {
			line += " (created)"
		}
		r.printf(r.stdout, "%s\n", line)
	case domain.StatusMissing:
	}
}

// FileFailed reports a per-file failure.
func (r *Reporter) FileFailed(src string, err error) {
	symbol := r.stderr.String(style.Cross).Foreground(termenv.ANSIRed)
	r.printf(r.stderr, "%s Error in %s: %s\n", symbol, filepath.Base(src), errorText(err))
}

// RunFinished prints the batch summary.
func (r *Reporter) RunFinished(_ domain.Kind, summary domain.Summary) {
	if summary.Files == 0 {
		return
	}
	r.printf(r.stdout, "Done: %d file(s), %d written, %d up to date, %d failed\n",
		summary.Files, summary.Written, summary.UpToDate, summary.Failed)
}

// WatchStarted prints the watch mode header.
func (r *Reporter) WatchStarted(root string) {
	symbol := r.stdout.String(style.Dot).Foreground(termenv.RGBColor(string(style.Iris)))
	r.printf(r.stdout, "%s Watch mode: scanning %s...\n", symbol, root)
}

// ChangeDetected reports a settled change of a source.
func (r *Reporter) ChangeDetected(path string) {
	symbol := r.stdout.String(style.Circle).Faint()
	r.printf(r.stdout, "%s Change: %s\n", symbol, filepath.Base(path))
}

func (r *Reporter) printf(out *termenv.Output, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(out, format, args...)
}

type messager interface {
	Message() string
}

// errorText flattens a wrapped error chain into a single line.
func errorText(err error) string {
	var parts []string
	for err != nil {
		m, ok := err.(messager)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, m.Message())
		err = errors.Unwrap(err)
	}
	return strings.Join(parts, ": ")
}
