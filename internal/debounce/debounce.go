// Package debounce coalesces rapid updates, acting only once input
// settles for a quiescence window.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window for slider-driven updates.
const DefaultWindow = 300 * time.Millisecond

// Debouncer runs a function after its window has elapsed without any new
// call. Rapid successive calls supersede the pending timer.
type Debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration
}

func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels any pending call and runs fn immediately.
func (d *Debouncer) Flush(fn func()) {
	d.Cancel()
	fn()
}
