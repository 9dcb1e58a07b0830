package tui

import (
	"time"

	"github.com/vovakirdan/retropix/internal/input"
)

// defaultHoldTimeout is how long a key stays held without a repeat press
// before a synthetic release is emitted. Terminal auto-repeat typically
// fires every 30-50ms once it kicks in, so 250ms tolerates the initial
// repeat delay without feeling sticky.
const defaultHoldTimeout = 250 * time.Millisecond

// keyTracker synthesizes key-up events for terminals, which only report
// key presses. A key counts as released once no press (including
// auto-repeat) has been seen for the hold timeout.
type keyTracker struct {
	lastSeen map[input.Key]time.Time
	timeout  time.Duration
}

func newKeyTracker(timeout time.Duration) *keyTracker {
	if timeout <= 0 {
		timeout = defaultHoldTimeout
	}
	return &keyTracker{
		lastSeen: make(map[input.Key]time.Time),
		timeout:  timeout,
	}
}

// press records a raw press (first or auto-repeat) at the given time.
func (t *keyTracker) press(k input.Key, now time.Time) {
	t.lastSeen[k] = now
}

// expired removes and returns all keys whose last press is older than the
// hold timeout. The caller forwards these as key-up signals.
func (t *keyTracker) expired(now time.Time) []input.Key {
	var released []input.Key
	for k, seen := range t.lastSeen {
		if now.Sub(seen) >= t.timeout {
			released = append(released, k)
			delete(t.lastSeen, k)
		}
	}
	return released
}

// reset forgets all tracked keys without reporting releases. Used on
// focus loss, where the engine clears its latch silently anyway.
func (t *keyTracker) reset() {
	clear(t.lastSeen)
}
