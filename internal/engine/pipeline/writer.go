package pipeline

import (
	"bytes"
	"errors"
	"io/fs"

	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Save writes art to out unless out already holds identical bytes.
// The source map is written to mapPath every time the code is, unless mapPath
// is empty or the artifact carries no map.
func Save(fsys ports.FileSystem, out, mapPath string, art domain.Artifact) (domain.WriteStatus, error) {
	status := domain.StatusUpdated

	existing, err := fsys.ReadFile(out)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		status = domain.StatusCreated
	case err != nil:
		return 0, zerr.With(zerr.Wrap(err, domain.ErrOutputReadFailed.Error()), "file", out)
	case bytes.Equal(existing, art.Code):
		return domain.StatusUpToDate, nil
	}

	if err := fsys.WriteFile(out, art.Code); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "file", out)
	}

	if mapPath != "" && art.Map != nil {
		if err := fsys.WriteFile(mapPath, art.Map); err != nil {
			return 0, zerr.With(zerr.Wrap(err, domain.ErrSourceMapWriteFailed.Error()), "file", mapPath)
		}
	}

	return status, nil
}
