package controller

import (
	"sync"
	"testing"
	"time"
)

type debounceRecorder struct {
	mu    sync.Mutex
	fires []string
}

func (r *debounceRecorder) record(p string) {
	r.mu.Lock()
	r.fires = append(r.fires, p)
	r.mu.Unlock()
}

func (r *debounceRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.fires...)
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	rec := &debounceRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	// A typing burst: each keystroke lands well inside the quiet window.
	for _, q := range []string{"m", "me", "mee", "meet", "meeting"} {
		d.Notify(q)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("burst fired %d times: %v", len(got), got)
	}
	if got[0] != "meeting" {
		t.Fatalf("fired with %q, want the latest payload", got[0])
	}
}

func TestDebouncerFiresPerQuietPeriod(t *testing.T) {
	rec := &debounceRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Notify("first")
	time.Sleep(80 * time.Millisecond)
	d.Notify("second")
	time.Sleep(80 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("fires = %v", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	rec := &debounceRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Notify("doomed")
	d.Stop()
	time.Sleep(80 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("stopped debouncer fired: %v", got)
	}
	// Stop again and on nil must not panic.
	d.Stop()
	var nilD *Debouncer
	nilD.Notify("x")
	nilD.Stop()
}
