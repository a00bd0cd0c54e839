package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single callback: each Trigger
// restarts a quiet window, and only when the window elapses with no new
// trigger does the most recent callback run. Stale triggers are never
// cancelled mid-run, they are simply not scheduled.
//
// Used for filesystem event bursts on dataset reload and for rapid
// search-input triggers, where only the latest request should proceed.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// New creates a debouncer with the given quiet window
func New(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn to run after the quiet window, replacing any pending
// callback from an earlier trigger
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		if d.isCurrent(seq) {
			fn()
		}
	})
}

// Stop cancels any pending callback
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) isCurrent(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}
