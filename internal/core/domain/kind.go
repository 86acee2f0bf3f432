package domain

import (
	"path/filepath"
	"strings"
)

// Kind identifies one of the two asset pipelines.
type Kind uint8

const (
	// KindStyle is the style sheet pipeline.
	KindStyle Kind = iota
	// KindScript is the script pipeline.
	KindScript
)

// Kinds lists every known pipeline kind.
var Kinds = []Kind{KindStyle, KindScript}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Label returns the short human-readable label used in console output.
func (k Kind) Label() string {
	switch k {
	case KindStyle:
		return "CSS"
	case KindScript:
		return "JS"
	default:
		return "?"
	}
}

// Ext returns the source file extension.
func (k Kind) Ext() string {
	switch k {
	case KindStyle:
		return ".css"
	case KindScript:
		return ".js"
	default:
		return ""
	}
}

// MinExt returns the suffix of minified output files.
func (k Kind) MinExt() string {
	return ".min" + k.Ext()
}

// SourceDir returns the conventional source directory relative to the project root.
func (k Kind) SourceDir() string {
	switch k {
	case KindStyle:
		return filepath.Join("src", "css")
	case KindScript:
		return filepath.Join("src", "js")
	default:
		return ""
	}
}

// HasSourceMap reports whether the pipeline emits a source map next to its output.
func (k Kind) HasSourceMap() bool {
	return k == KindScript
}

// IsSource reports whether path names an eligible source file: it carries the
// source extension and is not itself a minified output.
func (k Kind) IsSource(path string) bool {
	ext := k.Ext()
	if ext == "" {
		return false
	}
	name := filepath.Base(path)
	return strings.HasSuffix(name, ext) && !strings.HasSuffix(name, k.MinExt())
}

// OutputPath returns the minified output path for a source path.
func (k Kind) OutputPath(src string) string {
	return strings.TrimSuffix(src, k.Ext()) + k.MinExt()
}

// MapPath returns the source map path for a minified output path.
func (k Kind) MapPath(out string) string {
	return out + ".map"
}
