package domain

// SourceFile is a source read from disk for a single pipeline run.
type SourceFile struct {
	Path    string
	Content []byte
	Kind    Kind
}

// Artifact is the output of a transformer.
type Artifact struct {
	// Code is the minified text.
	Code []byte
	// Map is the source map, nil when the pipeline does not produce one.
	Map []byte
}

// WriteStatus describes what the writer did with an artifact.
type WriteStatus uint8

const (
	// StatusCreated means no output existed and it was written.
	StatusCreated WriteStatus = iota
	// StatusUpdated means the output differed and was overwritten.
	StatusUpdated
	// StatusUpToDate means the output already held identical bytes.
	StatusUpToDate
	// StatusMissing means the source vanished before it could be processed.
	StatusMissing
)

// String returns the status name used in logs and span attributes.
func (s WriteStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusUpToDate:
		return "up-to-date"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// WriteResult is the outcome of processing one source file.
type WriteResult struct {
	Source       string
	Output       string
	Status       WriteStatus
	OriginalSize int
	MinifiedSize int
}

// Written reports whether the output file was written.
func (r WriteResult) Written() bool {
	return r.Status == StatusCreated || r.Status == StatusUpdated
}

// SavedPercent returns the share of the source size removed by minification.
func (r WriteResult) SavedPercent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.OriginalSize-r.MinifiedSize) / float64(r.OriginalSize) * 100
}

// Summary aggregates the results of a batch run.
type Summary struct {
	Files       int
	Written     int
	UpToDate    int
	Failed      int
	RootMissing bool
}

// Add records a single file result.
func (s *Summary) Add(r WriteResult) {
	switch r.Status {
	case StatusCreated, StatusUpdated:
		s.Files++
		s.Written++
	case StatusUpToDate:
		s.Files++
		s.UpToDate++
	case StatusMissing:
	}
}

// AddFailure records a failed file.
func (s *Summary) AddFailure() {
	s.Files++
	s.Failed++
}
