package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/squeeze/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	times []time.Time
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	r.times = append(r.times, time.Now())
}

func (r *recorder) snapshot() ([]string, []time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...), append([]time.Time(nil), r.times...)
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)
		assert.Equal(t, watcher.StateIdle, d.State())

		d.Add("/project/src/css/main.css")
		assert.Equal(t, watcher.StatePending, d.State())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		paths, _ := rec.snapshot()
		assert.Equal(t, []string{"/project/src/css/main.css"}, paths)
		assert.Equal(t, watcher.StateIdle, d.State())
	})
}

func TestDebouncer_BurstRunsOnceAfterLastEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		start := time.Now()
		d.Add("/project/src/css/main.css")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/src/css/main.css")

		time.Sleep(90 * time.Millisecond)
		synctest.Wait()
		paths, _ := rec.snapshot()
		assert.Empty(t, paths, "window restarts on every event")

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		paths, times := rec.snapshot()
		require.Len(t, paths, 1)
		assert.Equal(t, 150*time.Millisecond, times[0].Sub(start))
	})
}

func TestDebouncer_LatestPathWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/css/a.css")
		d.Add("/project/src/css/b.css")
		d.Add("/project/src/css/c.css")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		paths, _ := rec.snapshot()
		assert.Equal(t, []string{"/project/src/css/c.css"}, paths)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/a.css")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/b.css")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		paths, _ := rec.snapshot()
		assert.Equal(t, []string{"/a.css", "/b.css"}, paths)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/src/js/app.js")
		d.Flush()

		paths, _ := rec.snapshot()
		assert.Equal(t, []string{"/project/src/js/app.js"}, paths)
		assert.Equal(t, watcher.StateIdle, d.State())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		paths, _ = rec.snapshot()
		assert.Len(t, paths, 1, "flushed change must not run again")
	})
}

func TestDebouncer_FlushIdle(t *testing.T) {
	var rec recorder
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()

	paths, _ := rec.snapshot()
	assert.Empty(t, paths)
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/a.css")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, watcher.StateIdle, d.State())
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", watcher.StateIdle.String())
	assert.Equal(t, "pending", watcher.StatePending.String())
}
