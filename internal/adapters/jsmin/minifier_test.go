package jsmin_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/squeeze/internal/adapters/jsmin"
	"go.trai.ch/squeeze/internal/core/domain"
)

const appSource = `/**
 * Application bootstrap.
 */
function greet(firstName, lastName) {
	const fullName = firstName + " " + lastName;
	console.debug("computing greeting", fullName);
	debugger;
	console.log("hello", fullName);
	return fullName;
}

greet("Ada", "Lovelace");
`

func transform(t *testing.T, opts jsmin.Options, content string) domain.Artifact {
	t.Helper()

	m := jsmin.New(opts)
	art, err := m.Transform(context.Background(), domain.SourceFile{
		Path:    "/project/src/js/app.js",
		Content: []byte(content),
		Kind:    domain.KindScript,
	})
	require.NoError(t, err)
	return art
}

func TestMinifier_Transform(t *testing.T) {
	art := transform(t, jsmin.DefaultOptions(), appSource)
	code := string(art.Code)

	assert.Less(t, len(art.Code), len(appSource))
	assert.Contains(t, code, "console.log(")
	assert.NotContains(t, code, "console.debug")
	assert.NotContains(t, code, "debugger")
	assert.NotContains(t, code, "Application bootstrap")
	assert.NotContains(t, code, "firstName")
	assert.NotContains(t, code, "lastName")
	assert.True(t, strings.HasSuffix(code, "\n//# sourceMappingURL=app.min.js.map"))
}

func TestMinifier_Transform_SourceMap(t *testing.T) {
	art := transform(t, jsmin.DefaultOptions(), appSource)
	require.NotEmpty(t, art.Map)

	var sourceMap struct {
		Version        int      `json:"version"`
		Sources        []string `json:"sources"`
		SourcesContent []string `json:"sourcesContent"`
		Mappings       string   `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(art.Map, &sourceMap))

	assert.Equal(t, 3, sourceMap.Version)
	assert.Equal(t, []string{"app.js"}, sourceMap.Sources)
	require.Len(t, sourceMap.SourcesContent, 1)
	assert.Equal(t, appSource, sourceMap.SourcesContent[0])
	assert.NotEmpty(t, sourceMap.Mappings)
}

func TestMinifier_Transform_WithoutSourceMap(t *testing.T) {
	opts := jsmin.DefaultOptions()
	opts.SourceMap = false

	art := transform(t, opts, appSource)

	assert.Nil(t, art.Map)
	assert.NotContains(t, string(art.Code), "sourceMappingURL")
}

func TestMinifier_Transform_Deterministic(t *testing.T) {
	first := transform(t, jsmin.DefaultOptions(), appSource)
	second := transform(t, jsmin.DefaultOptions(), appSource)

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Map, second.Map)
}

func TestMinifier_Transform_SyntaxError(t *testing.T) {
	m := jsmin.New(jsmin.DefaultOptions())

	_, err := m.Transform(context.Background(), domain.SourceFile{
		Path:    "/project/src/js/broken.js",
		Content: []byte("const = 5;\nconsole.log(1);\n"),
		Kind:    domain.KindScript,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrTransformFailed.Error())
	assert.Contains(t, err.Error(), "broken.js:1:")
}

func TestMinifier_Transform_Empty(t *testing.T) {
	opts := jsmin.DefaultOptions()
	opts.SourceMap = false

	art := transform(t, opts, "")

	assert.Empty(t, strings.TrimSpace(string(art.Code)))
}

func TestMinifier_Transform_BlockScopedDeclarations(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "top-level const", source: "const big = 1;\nconsole.log(big);\n"},
		{name: "top-level let", source: "let x = 1;\nx += 2;\nconsole.log(x);\n"},
		{name: "const in function", source: "function f() {\n  const a = 1;\n  return a + 1;\n}\nconsole.log(f());\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := transform(t, jsmin.DefaultOptions(), tt.source)
			assert.Contains(t, string(art.Code), "console.log(")
		})
	}
}

func TestMinifier_Transform_KeepsModernSyntax(t *testing.T) {
	art := transform(t, jsmin.DefaultOptions(), "function merge(b) {\n  return { x: 1, ...b };\n}\nconsole.log(merge({ y: 2 }));\n")
	code := string(art.Code)

	assert.Regexp(t, `\{x:1,\.\.\.\w+\}`, code)
	assert.NotContains(t, code, "defineProperty")
}

func TestMinifier_Transform_SiteScript(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("testdata", "main.js"))
	require.NoError(t, err)

	art := transform(t, jsmin.DefaultOptions(), string(source))
	code := string(art.Code)

	assert.Less(t, len(art.Code), len(source))
	assert.Contains(t, code, "DOMContentLoaded")
	assert.Contains(t, code, "IntersectionObserver")
	assert.NotContains(t, code, "// Mobile Navigation Logic")
	assert.True(t, strings.HasSuffix(code, "\n//# sourceMappingURL=app.min.js.map"))
	assert.NotEmpty(t, art.Map)
}
