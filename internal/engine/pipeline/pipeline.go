// Package pipeline implements discovery, transformation and smart save of minifiable sources.
package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// SpanName is the name of the span recorded for every processed file.
const SpanName = "minify.file"

// Pipeline minifies the sources of one kind below a source root.
type Pipeline struct {
	kind        domain.Kind
	root        string
	fs          ports.FileSystem
	transformer ports.Transformer
	reporter    ports.Reporter
	tracer      ports.Tracer

	// mu serialises ProcessFile so that no two read-compare-write sequences interleave.
	mu sync.Mutex
}

// New creates a pipeline for kind rooted at root.
func New(
	kind domain.Kind,
	root string,
	fsys ports.FileSystem,
	transformer ports.Transformer,
	reporter ports.Reporter,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		kind:        kind,
		root:        root,
		fs:          fsys,
		transformer: transformer,
		reporter:    reporter,
		tracer:      tracer,
	}
}

// Kind returns the kind of sources handled by the pipeline.
func (p *Pipeline) Kind() domain.Kind {
	return p.kind
}

// Root returns the source root.
func (p *Pipeline) Root() string {
	return p.root
}

// Accepts reports whether path is a source of this pipeline.
func (p *Pipeline) Accepts(path string) bool {
	return p.kind.IsSource(path)
}

// RunBatch processes every discovered source once.
// Per-file failures are counted in the summary and never stop the batch;
// only a canceled context does.
func (p *Pipeline) RunBatch(ctx context.Context, silent bool) (domain.Summary, error) {
	var summary domain.Summary

	if !silent {
		p.reporter.RunStarted(p.kind)
	}

	files, exists, err := Discover(p.fs, p.kind, p.root)
	if err != nil {
		return summary, err
	}
	if !exists {
		summary.RootMissing = true
		p.reporter.SourceRootMissing(p.root)
		return summary, nil
	}
	if len(files) == 0 {
		if !silent {
			p.reporter.NoFilesFound(p.kind)
		}
		return summary, nil
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := p.ProcessFile(ctx, file, silent)
		if err != nil {
			summary.AddFailure()
			continue
		}
		summary.Add(result)
	}

	if !silent {
		p.reporter.RunFinished(p.kind, summary)
	}
	return summary, nil
}

// ProcessFile minifies a single source and saves the result.
// A source that no longer exists yields StatusMissing and touches nothing.
// Failures are reported and returned.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, silent bool) (domain.WriteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := p.kind.OutputPath(path)
	result := domain.WriteResult{Source: path, Output: out, Status: domain.StatusMissing}

	ctx, span := p.tracer.Start(ctx, SpanName, ports.WithAttribute("file", path))
	defer span.End()

	content, err := p.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		span.SetAttribute("status", result.Status.String())
		return result, nil
	}

	if !silent {
		p.reporter.FileStarted(path)
	}

	if err != nil {
		return result, p.fail(span, path, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "file", path))
	}

	art, err := p.transformer.Transform(ctx, domain.SourceFile{Path: path, Content: content, Kind: p.kind})
	if err != nil {
		return result, p.fail(span, path, err)
	}

	mapPath := ""
	if p.kind.HasSourceMap() {
		mapPath = p.kind.MapPath(out)
	}

	status, err := Save(p.fs, out, mapPath, art)
	if err != nil {
		return result, p.fail(span, path, err)
	}

	result.Status = status
	result.OriginalSize = len(content)
	result.MinifiedSize = len(art.Code)

	span.SetAttribute("status", status.String())
	span.SetAttribute("bytes.original", result.OriginalSize)
	span.SetAttribute("bytes.minified", result.MinifiedSize)

	if !silent {
		p.reporter.FileFinished(result)
	}
	return result, nil
}

func (p *Pipeline) fail(span ports.Span, path string, err error) error {
	span.RecordError(err)
	span.SetAttribute("status", "failed")
	p.reporter.FileFailed(path, err)
	return err
}
