package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skippedDirectories are directories that are never watched.
var skippedDirectories = map[string]bool{
	".git":         true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify.
// The underlying fsnotify instance is only created by Start.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
	now       func() time.Time
}

// NewWatcher creates a new file system watcher that reports errors to logger.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
		now:    time.Now,
	}
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchStartFailed.Error())
	}
	w.fsWatcher = fsWatcher

	for dir := range watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			_ = w.fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatchStartFailed.Error()), "dir", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
// Stopping a watcher that was never started is a no-op.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
// The sequence ends once the watcher is stopped or its context is canceled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are skipped.
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			if watchEvent.Operation == ports.OpCreate {
				w.addCreatedDir(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// addCreatedDir starts watching a directory that appeared after Start.
func (w *Watcher) addCreatedDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skippedDirectories[info.Name()] {
		return
	}
	for dir := range watchRecursively(path) {
		if err := w.fsWatcher.Add(dir); err != nil {
			w.logger.Warn("watcher: cannot watch " + dir + ": " + err.Error())
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op, Time: w.now()}, true
}
