package domain

import "go.trai.ch/zerr"

var (
	// ErrDiscoveryFailed is returned when the source tree cannot be listed.
	ErrDiscoveryFailed = zerr.New("failed to discover source files")

	// ErrSourceReadFailed is returned when a source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrTransformFailed is returned when a transformer rejects its input.
	ErrTransformFailed = zerr.New("failed to minify source")

	// ErrOutputReadFailed is returned when an existing output file cannot be read for comparison.
	ErrOutputReadFailed = zerr.New("failed to read existing output")

	// ErrOutputWriteFailed is returned when a minified file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write minified file")

	// ErrSourceMapWriteFailed is returned when a source map cannot be written.
	ErrSourceMapWriteFailed = zerr.New("failed to write source map")

	// ErrBatchFailed is returned when at least one file of a batch failed.
	ErrBatchFailed = zerr.New("one or more files failed to minify")

	// ErrWatchStartFailed is returned when the file watcher cannot be started.
	ErrWatchStartFailed = zerr.New("failed to start file watcher")

	// ErrUnknownKind is returned when no pipeline is registered for a kind.
	ErrUnknownKind = zerr.New("unknown pipeline kind")

	// ErrFailedToGetRoot is returned when the project root cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to determine project root")
)
