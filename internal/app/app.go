// Package app implements the application layer of the minifiers.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/squeeze/internal/adapters/watcher"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/squeeze/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Transformers groups the transformer of each pipeline kind.
type Transformers struct {
	Style  ports.Transformer
	Script ports.Transformer
}

// App represents the main application logic.
type App struct {
	cfg       domain.Config
	fs        ports.FileSystem
	reporter  ports.Reporter
	watcher   ports.Watcher
	logger    ports.Logger
	pipelines map[domain.Kind]*pipeline.Pipeline
}

// New creates a new App instance with one pipeline per kind.
func New(
	cfg domain.Config,
	fsys ports.FileSystem,
	transformers Transformers,
	reporter ports.Reporter,
	tracer ports.Tracer,
	w ports.Watcher,
	log ports.Logger,
) *App {
	byKind := map[domain.Kind]ports.Transformer{
		domain.KindStyle:  transformers.Style,
		domain.KindScript: transformers.Script,
	}

	pipelines := make(map[domain.Kind]*pipeline.Pipeline, len(byKind))
	for _, kind := range domain.Kinds {
		if tr := byKind[kind]; tr != nil {
			pipelines[kind] = pipeline.New(kind, cfg.SourceRoot(kind), fsys, tr, reporter, tracer)
		}
	}

	return &App{
		cfg:       cfg,
		fs:        fsys,
		reporter:  reporter,
		watcher:   w,
		logger:    log,
		pipelines: pipelines,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Watch keeps the process alive and re-minifies sources as they change.
	Watch bool
}

// Run minifies every source of kind once, or keeps watching them when opts.Watch is set.
// A batch in which at least one file failed returns an error matching domain.ErrBatchFailed.
func (a *App) Run(ctx context.Context, kind domain.Kind, opts RunOptions) error {
	p, ok := a.pipelines[kind]
	if !ok {
		return zerr.With(domain.ErrUnknownKind, "kind", kind.String())
	}

	if opts.Watch {
		return a.watch(ctx, p)
	}

	summary, err := p.RunBatch(ctx, false)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return errors.Join(domain.ErrBatchFailed,
			zerr.With(zerr.New("batch finished with failures"), "failed", summary.Failed))
	}
	return nil
}

// watch runs a silent batch and then re-processes each source once its changes settle.
// It returns nil when ctx is canceled.
func (a *App) watch(ctx context.Context, p *pipeline.Pipeline) error {
	a.reporter.WatchStarted(a.displayPath(p.Root()))

	summary, err := p.RunBatch(ctx, true)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	if summary.RootMissing {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, p.Root()); err != nil {
		return err
	}

	// Changes flushed during shutdown are still processed to completion.
	processCtx := context.WithoutCancel(ctx)
	debouncer := watcher.NewDebouncer(a.cfg.Debounce, func(path string) {
		a.reporter.ChangeDetected(path)
		_, _ = p.ProcessFile(processCtx, path, false)
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		return a.watcher.Stop()
	})

	g.Go(func() error {
		defer cancel()
		for event := range a.watcher.Events() {
			if !a.eligible(p, event) {
				continue
			}
			debouncer.Add(event.Path)
		}
		debouncer.Flush()
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to stop file watcher"))
	}
	a.logger.Info("watch mode stopped")
	return nil
}

func (a *App) eligible(p *pipeline.Pipeline, event ports.WatchEvent) bool {
	if !p.Accepts(event.Path) {
		return false
	}
	info, err := a.fs.Stat(event.Path)
	return err != nil || !info.IsDir()
}

// displayPath returns path relative to the project root when possible.
func (a *App) displayPath(path string) string {
	rel, err := filepath.Rel(a.cfg.ProjectRoot, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
