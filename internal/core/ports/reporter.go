package ports

import "go.trai.ch/squeeze/internal/core/domain"

// Reporter renders the per-run and per-file console lines of a pipeline.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// RunStarted prints the batch header.
	RunStarted(kind domain.Kind)
	// SourceRootMissing warns that the source directory does not exist.
	SourceRootMissing(root string)
	// NoFilesFound reports an empty discovery result.
	NoFilesFound(kind domain.Kind)
	// FileStarted reports that a source is being minified.
	FileStarted(src string)
	// FileFinished reports the outcome of a successfully processed source.
	FileFinished(result domain.WriteResult)
	// FileFailed reports a per-file failure.
	FileFailed(src string, err error)
	// RunFinished prints the batch summary.
	RunFinished(kind domain.Kind, summary domain.Summary)
	// WatchStarted prints the watch mode header.
	WatchStarted(root string)
	// ChangeDetected reports a settled change of a source.
	ChangeDetected(path string)
}
