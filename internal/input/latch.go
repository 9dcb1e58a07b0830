// Package input tracks the set of currently held keys, converting raw
// repeat-prone press/release signals into clean one-shot transitions.
package input

// Key identifies a single key in the platform's naming scheme.
type Key string

// Latch deduplicates raw key signals: a held key reports exactly one down
// transition until it is released, and a release only counts when a
// matching down was seen first.
type Latch struct {
	held map[Key]struct{}
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{held: make(map[Key]struct{})}
}

// Press records a raw key-down signal. It reports true only on the first
// press since the key was last released; auto-repeat presses report false.
func (l *Latch) Press(k Key) bool {
	if _, ok := l.held[k]; ok {
		return false
	}
	l.held[k] = struct{}{}
	return true
}

// Release records a raw key-up signal. It reports true only if the key
// was recorded as held.
func (l *Latch) Release(k Key) bool {
	if _, ok := l.held[k]; !ok {
		return false
	}
	delete(l.held, k)
	return true
}

// FocusLost clears the held set without reporting any release
// transitions. Keys cleared this way never produce an up event; the
// simulation learns about the focus change through a separate signal and
// must assume all keys are up afterwards.
func (l *Latch) FocusLost() {
	clear(l.held)
}

// Held reports whether k is currently recorded as held.
func (l *Latch) Held(k Key) bool {
	_, ok := l.held[k]
	return ok
}

// HeldCount returns the number of currently held keys.
func (l *Latch) HeldCount() int {
	return len(l.held)
}
