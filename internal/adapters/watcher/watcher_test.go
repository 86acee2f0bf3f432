package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/squeeze/internal/adapters/watcher"
	"go.trai.ch/squeeze/internal/core/domain"
	"go.trai.ch/squeeze/internal/core/ports"
	"go.trai.ch/squeeze/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func nextEvent(t *testing.T, events <-chan ports.WatchEvent, match func(ports.WatchEvent) bool) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed")
			if match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatal("timed out waiting for watch event")
		}
	}
}

func startWatcher(t *testing.T, root string) <-chan ports.WatchEvent {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(log)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	events := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return events
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.css")
	require.NoError(t, os.WriteFile(path, []byte("a{}"), domain.FilePerm))

	events := startWatcher(t, root)
	require.NoError(t, os.WriteFile(path, []byte("b{}"), domain.FilePerm))

	ev := nextEvent(t, events, func(ev ports.WatchEvent) bool {
		return ev.Path == path && ev.Operation == ports.OpWrite
	})
	assert.False(t, ev.Time.IsZero())
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)

	dir := filepath.Join(root, "components")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	nextEvent(t, events, func(ev ports.WatchEvent) bool {
		return ev.Path == dir && ev.Operation == ports.OpCreate
	})

	path := filepath.Join(dir, "button.css")
	require.Eventually(t, func() bool {
		return os.WriteFile(path, []byte("a{}"), domain.FilePerm) == nil
	}, time.Second, 10*time.Millisecond)

	nextEvent(t, events, func(ev ports.WatchEvent) bool {
		return ev.Path == path
	})
}

func TestWatcher_SkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	ignored := filepath.Join(root, "node_modules")
	require.NoError(t, os.Mkdir(ignored, domain.DirPerm))

	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(ignored, "lib.css"), []byte("a{}"), domain.FilePerm))
	marker := filepath.Join(root, "marker.css")
	require.NoError(t, os.WriteFile(marker, []byte("a{}"), domain.FilePerm))

	ev := nextEvent(t, events, func(ev ports.WatchEvent) bool {
		assert.NotContains(t, ev.Path, "lib.css")
		return ev.Path == marker
	})
	assert.Equal(t, marker, ev.Path)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	require.NoError(t, w.Stop())
}
