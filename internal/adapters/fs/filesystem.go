// Package fs provides the operating system implementation of ports.FileSystem.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem using the standard library and doublestar globbing.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	//nolint:gosec // Paths come from discovery under the configured source root
	return os.ReadFile(path)
}

// WriteFile replaces the content of the file at path, creating it if necessary.
func (o *OSFS) WriteFile(path string, data []byte) error {
	//nolint:gosec // Output files are meant to be world-readable static assets
	return os.WriteFile(path, data, domain.FilePerm)
}

// Glob returns the regular files under root matching pattern.
// The walk descends into every subdirectory; directory entries are listed
// in lexical order, so the result is stable for an unchanged tree.
func (o *OSFS) Glob(root, pattern string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(abs), pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(abs, filepath.FromSlash(m)))
	}
	return paths, nil
}
