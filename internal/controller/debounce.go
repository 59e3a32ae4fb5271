package controller

import (
	"sync"
	"time"
)

// SearchDelay is the quiet period before a typed query hits the network.
const SearchDelay = 300 * time.Millisecond

// Debouncer coalesces rapid triggers into one callback after a quiet period.
//
// A single timer slot with replace-on-reschedule semantics: every Notify
// cancels the pending fire and reschedules with the latest payload, so at
// most one callback runs per quiet period. A callback already started is not
// cancelled.
type Debouncer struct {
	delay time.Duration
	fn    func(payload string)

	mu      sync.Mutex
	timer   *time.Timer
	payload string
}

func NewDebouncer(delay time.Duration, fn func(payload string)) *Debouncer {
	if delay <= 0 {
		delay = SearchDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

func (d *Debouncer) Notify(payload string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.payload = payload
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.onTimer)
		d.mu.Unlock()
		return
	}
	d.timer.Reset(d.delay)
	d.mu.Unlock()
}

// Stop cancels any pending fire. Safe to call multiple times.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
}

func (d *Debouncer) onTimer() {
	d.mu.Lock()
	payload := d.payload
	d.mu.Unlock()
	d.fn(payload)
}
