// Package watcher implements file system watching for the minifier watch mode.
package watcher

import (
	"sync"
	"time"
)

// State is the phase of a Debouncer.
type State uint8

const (
	// StateIdle means no change is waiting to settle.
	StateIdle State = iota
	// StatePending means a change is waiting for the window to pass quietly.
	StatePending
)

// String returns the state name.
func (s State) String() string {
	if s == StatePending {
		return "pending"
	}
	return "idle"
}

// Debouncer coalesces a burst of change events into a single callback.
// Only the most recent path of a burst is delivered.
type Debouncer struct {
	mu       sync.Mutex
	state    State
	path     string
	timer    *time.Timer
	window   time.Duration
	callback func(path string)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(path string)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Add records a change of path and restarts the quiet window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.path = path
	if d.timer != nil {
		d.timer.Stop()
	}
	d.state = StatePending
	d.timer = time.AfterFunc(d.window, d.fire)
}

// State returns the current phase.
func (d *Debouncer) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	path, ok := d.take()
	if ok && d.callback != nil {
		d.callback(path)
	}
}

// Flush runs a pending callback immediately and blocks until it returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && !d.timer.Stop() {
		// Timer already fired; let it complete rather than processing twice.
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	d.fire()
}

// take moves the debouncer back to idle and returns the path that was pending.
func (d *Debouncer) take() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StatePending {
		d.timer = nil
		return "", false
	}
	path := d.path
	d.state = StateIdle
	d.path = ""
	d.timer = nil
	return path, true
}
