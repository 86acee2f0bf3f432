package ports

import "io/fs"

// FileSystem is the file I/O capability shared by both pipelines.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the content of the file at path, creating it if necessary.
	WriteFile(path string, data []byte) error
	// Glob returns the regular files under root matching a doublestar pattern,
	// as absolute paths in directory-listing order.
	Glob(root, pattern string) ([]string, error)
}
