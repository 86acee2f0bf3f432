package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/squeeze/internal/adapters/report"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestReporter(t *testing.T) (*report.Reporter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	return report.NewReporter(&stdout, &stderr), &stdout, &stderr
}

func TestReporter_BatchLines(t *testing.T) {
	r, stdout, stderr := newTestReporter(t)

	r.RunStarted(domain.KindStyle)
	r.FileStarted("/project/src/css/main.css")
	r.FileFinished(domain.WriteResult{
		Source:       "/project/src/css/main.css",
		Output:       "/project/src/css/main.min.css",
		Status:       domain.StatusUpdated,
		OriginalSize: 200,
		MinifiedSize: 150,
	})
	r.RunFinished(domain.KindStyle, domain.Summary{Files: 1, Written: 1})

	assert.Equal(t,
		"CSS auto-discovery minification\n"+
			"~ Minifying: main.css\n"+
			"✓ Saved 25.0% → main.min.css\n"+
			"Done: 1 file(s), 1 written, 0 up to date, 0 failed\n",
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestReporter_FileFinished(t *testing.T) {
	tests := []struct {
		name   string
		result domain.WriteResult
		want   string
	}{
		{
			name: "created",
			result: domain.WriteResult{
				Output: "/p/app.min.js", Status: domain.StatusCreated, OriginalSize: 3, MinifiedSize: 2,
			},
			want: "✓ Saved 33.3% → app.min.js (created)\n",
		},
		{
			name:   "up to date",
			result: domain.WriteResult{Output: "/p/app.min.js", Status: domain.StatusUpToDate},
			want:   "✓ Up to date: app.min.js\n",
		},
		{
			name:   "empty source",
			result: domain.WriteResult{Output: "/p/empty.min.css", Status: domain.StatusUpdated},
			want:   "✓ Saved 0.0% → empty.min.css\n",
		},
		{
			name:   "missing source prints nothing",
			result: domain.WriteResult{Output: "/p/gone.min.css", Status: domain.StatusMissing},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stdout, _ := newTestReporter(t)
			r.FileFinished(tt.result)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestReporter_WarningsAndErrorsGoToStderr(t *testing.T) {
	r, stdout, stderr := newTestReporter(t)

	r.SourceRootMissing("/project/src/js")
	r.FileFailed("/project/src/js/broken.js", errors.New("unexpected end of file"))

	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"! Directory not found: /project/src/js\n"+
			"✗ Error in broken.js: unexpected end of file\n",
		stderr.String())
}

func TestReporter_NoFilesAndEmptySummary(t *testing.T) {
	r, stdout, _ := newTestReporter(t)

	r.NoFilesFound(domain.KindScript)
	r.RunFinished(domain.KindScript, domain.Summary{})

	assert.Equal(t, "No .js files found.\n", stdout.String())
}

func TestReporter_WatchLines(t *testing.T) {
	r, stdout, _ := newTestReporter(t)

	r.WatchStarted("src/css")
	r.ChangeDetected("/project/src/css/theme/dark.css")

	assert.Equal(t,
		"● Watch mode: scanning src/css...\n"+
			"○ Change: dark.css\n",
		stdout.String())
}

func TestReporter_FileFailedChain(t *testing.T) {
	r, _, stderr := newTestReporter(t)

	err := zerr.Wrap(errors.New("app.js:3:7: Expected \";\""), "failed to minify source")
	r.FileFailed("/project/src/js/app.js", err)

	assert.Equal(t,
		"✗ Error in app.js: failed to minify source: app.js:3:7: Expected \";\"\n",
		stderr.String())
}

func TestReporter_SetOutput(t *testing.T) {
	r, stdout, stderr := newTestReporter(t)

	var out, errOut bytes.Buffer
	r.SetOutput(&out, &errOut)
	r.RunStarted(domain.KindScript)
	r.SourceRootMissing("/project/src/js")

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, "JS auto-discovery minification\n", out.String())
	assert.Equal(t, "! Directory not found: /project/src/js\n", errOut.String())
}
