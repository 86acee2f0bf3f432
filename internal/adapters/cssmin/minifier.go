// Package cssmin implements the regex-based style sheet transformer.
package cssmin

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
)

var _ ports.Transformer = (*Minifier)(nil)

// space matches the same characters as the ECMAScript \s class.
const space = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	commentRe    = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRe = regexp.MustCompile(space + `+`)
	structuralRe = regexp.MustCompile(space + `*([{}:;,>+~])` + space + `*`)
	// One alternative per quoting style; RE2 has no backreferences.
	urlRe = regexp.MustCompile(`url\((?:'([^'"()]+)'|"([^'"()]+)"|([^'"()]+))\)`)
)

// Minifier rewrites CSS text without building a syntax tree.
// Malformed input is passed through best-effort.
type Minifier struct{}

// New creates a new Minifier.
func New() *Minifier {
	return &Minifier{}
}

// Transform minifies the style sheet. It never fails.
func (m *Minifier) Transform(_ context.Context, src domain.SourceFile) (domain.Artifact, error) {
	return domain.Artifact{Code: []byte(Minify(string(src.Content)))}, nil
}

// Minify applies the rewrite rules in order; later rules rely on whitespace
// already being collapsed by earlier ones.
func Minify(css string) string {
	css = commentRe.ReplaceAllString(css, "")
	css = whitespaceRe.ReplaceAllString(css, " ")
	css = structuralRe.ReplaceAllString(css, "${1}")
	css = strings.ReplaceAll(css, ";}", "}")
	css = urlRe.ReplaceAllString(css, "url(${1}${2}${3})")
	return strings.TrimSpace(css)
}
