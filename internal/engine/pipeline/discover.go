package pipeline

import (
	"errors"
	"io/fs"

	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Discover returns the eligible sources of kind under root.
// A root that does not exist or is not a directory yields no files and
// reports exists as false.
func Discover(fsys ports.FileSystem, kind domain.Kind, root string) (files []string, exists bool, err error) {
	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "root", root)
	}
	if !info.IsDir() {
		return nil, false, nil
	}

	matches, err := fsys.Glob(root, "**/*"+kind.Ext())
	if err != nil {
		return nil, true, zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "root", root)
	}

	files = make([]string, 0, len(matches))
	for _, m := range matches {
		if kind.IsSource(m) {
			files = append(files, m)
		}
	}
	return files, true, nil
}
