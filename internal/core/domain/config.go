package domain

import (
	"path/filepath"
	"time"
)

// DefaultDebounce is the quiet period the watcher waits for before re-processing a file.
const DefaultDebounce = 100 * time.Millisecond

// Config is the immutable process configuration.
type Config struct {
	// ProjectRoot is the directory the conventional source roots are resolved against.
	ProjectRoot string
	// Debounce is the watch-mode quiet period.
	Debounce time.Duration
}

// NewConfig creates a Config rooted at projectRoot with default settings.
func NewConfig(projectRoot string) Config {
	return Config{
		ProjectRoot: projectRoot,
		Debounce:    DefaultDebounce,
	}
}

// SourceRoot returns the absolute source directory of the given pipeline.
func (c Config) SourceRoot(k Kind) string {
	return filepath.Join(c.ProjectRoot, k.SourceDir())
}
