// Package jsmin implements the syntax-aware script transformer on top of esbuild.
package jsmin

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transformer = (*Minifier)(nil)

// Options is the fixed compression profile applied to every script.
type Options struct {
	// Pure lists calls that are side-effect free and removed when their result is unused.
	Pure []string
	// DropDebugger removes debugger statements.
	DropDebugger bool
	// Target is the language level output may use. Syntax newer than the
	// target is lowered, so the default keeps every construct as written.
	Target api.Target
	// SourceMap enables an external source map with sources content included.
	SourceMap bool
}

// DefaultOptions keeps console logging except console.debug, drops debugger
// statements and leaves the syntax level of the input untouched.
func DefaultOptions() Options {
	return Options{
		Pure:         []string{"console.debug"},
		DropDebugger: true,
		Target:       api.ESNext,
		SourceMap:    true,
	}
}

// Minifier compresses scripts and renames local identifiers.
type Minifier struct {
	opts Options
}

// New creates a new Minifier with the given options.
func New(opts Options) *Minifier {
	return &Minifier{opts: opts}
}

// Transform minifies the script. A syntax error fails the whole file.
func (m *Minifier) Transform(_ context.Context, src domain.SourceFile) (domain.Artifact, error) {
	sourceName := filepath.Base(src.Path)
	outputName := filepath.Base(src.Kind.OutputPath(src.Path))

	result := api.Transform(string(src.Content), m.transformOptions(sourceName))
	if len(result.Errors) > 0 {
		return domain.Artifact{}, messageError(sourceName, result.Errors[0], len(result.Errors))
	}

	if !m.opts.SourceMap {
		return domain.Artifact{Code: result.Code}, nil
	}

	code := strings.TrimRight(string(result.Code), "\n")
	code += "\n//# sourceMappingURL=" + filepath.Base(src.Kind.MapPath(outputName))

	return domain.Artifact{
		Code: []byte(code),
		Map:  result.Map,
	}, nil
}

func (m *Minifier) transformOptions(sourceName string) api.TransformOptions {
	opts := api.TransformOptions{
		Loader:            api.LoaderJS,
		Sourcefile:        sourceName,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LegalComments:     api.LegalCommentsNone,
		Charset:           api.CharsetUTF8,
		Target:            m.opts.Target,
		Pure:              m.opts.Pure,
		LogLevel:          api.LogLevelSilent,
	}
	if m.opts.DropDebugger {
		opts.Drop = api.DropDebugger
	}
	if m.opts.SourceMap {
		opts.Sourcemap = api.SourceMapExternal
		opts.SourcesContent = api.SourcesContentInclude
	}
	return opts
}

// messageError converts the first esbuild diagnostic into a zerr error carrying its position.
func messageError(sourceName string, msg api.Message, total int) error {
	text := msg.Text
	var err error

	if loc := msg.Location; loc != nil {
		err = zerr.New(fmt.Sprintf("%s:%d:%d: %s", sourceName, loc.Line, loc.Column+1, text))
		err = zerr.With(err, "line", loc.Line)
		err = zerr.With(err, "column", loc.Column+1)
	} else {
		err = zerr.New(fmt.Sprintf("%s: %s", sourceName, text))
	}

	if total > 1 {
		err = zerr.With(err, "errors", total)
	}
	return zerr.Wrap(err, domain.ErrTransformFailed.Error())
}
