package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/retropix/internal/input"
)

func TestKeyTrackerExpiresAfterTimeout(t *testing.T) {
	start := time.Now()
	tr := newKeyTracker(100 * time.Millisecond)

	tr.press("a", start)

	if got := tr.expired(start.Add(50 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expired = %v before the timeout, expected none", got)
	}
	got := tr.expired(start.Add(100 * time.Millisecond))
	if len(got) != 1 || got[0] != input.Key("a") {
		t.Errorf("expired = %v at the timeout, expected [a]", got)
	}

	// Expired keys are forgotten; they do not expire twice.
	if got := tr.expired(start.Add(time.Second)); len(got) != 0 {
		t.Errorf("expired = %v after reporting, expected none", got)
	}
}

func TestKeyTrackerRepeatExtendsHold(t *testing.T) {
	start := time.Now()
	tr := newKeyTracker(100 * time.Millisecond)

	tr.press("a", start)
	tr.press("a", start.Add(80*time.Millisecond)) // auto-repeat

	if got := tr.expired(start.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expired = %v while auto-repeat keeps the key alive, expected none", got)
	}
	if got := tr.expired(start.Add(200 * time.Millisecond)); len(got) != 1 {
		t.Errorf("expired = %v once repeats stop, expected [a]", got)
	}
}

func TestKeyTrackerTracksKeysIndependently(t *testing.T) {
	start := time.Now()
	tr := newKeyTracker(100 * time.Millisecond)

	tr.press("a", start)
	tr.press("b", start.Add(90*time.Millisecond))

	got := tr.expired(start.Add(120 * time.Millisecond))
	if len(got) != 1 || got[0] != input.Key("a") {
		t.Errorf("expired = %v, expected only [a]", got)
	}
}

func TestKeyTrackerResetIsSilent(t *testing.T) {
	start := time.Now()
	tr := newKeyTracker(100 * time.Millisecond)

	tr.press("a", start)
	tr.press("b", start)
	tr.reset()

	if got := tr.expired(start.Add(time.Hour)); len(got) != 0 {
		t.Errorf("expired = %v after reset, expected none", got)
	}
}

func TestKeyTrackerDefaultTimeout(t *testing.T) {
	tr := newKeyTracker(0)
	if tr.timeout != defaultHoldTimeout {
		t.Errorf("timeout = %v, expected default %v", tr.timeout, defaultHoldTimeout)
	}
}
