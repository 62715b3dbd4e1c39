// Package debounce provides a timer-reset debouncer: every Trigger restarts
// the countdown, and the callback fires only after a full quiet interval.
// It exists so autosave behavior can be tested apart from the storage call
// it eventually makes.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into a single callback invocation
// once the burst goes quiet. Safe for concurrent use.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fn    func()
}

// New creates a debouncer with the given quiet interval.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the quiet interval, cancelling any
// previously scheduled invocation. The latest fn wins.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.fn = fn
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		fn := d.fn
		d.fn = nil
		d.timer = nil
		d.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// Flush runs any pending invocation immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.fn = nil
	d.timer = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels any pending invocation without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fn = nil
}
