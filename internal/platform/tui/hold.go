package tui

import "github.com/vovakirdan/lane-racer/internal/core"

// keyHoldMs is how long a steering key counts as held after its last
// press. Terminals only report presses, so a held key is seen as a stream
// of auto-repeats and a release is inferred when the stream stops. The
// window has to outlast the usual initial auto-repeat delay (250-500 ms),
// otherwise a held key would release before its first repeat arrives.
const keyHoldMs = 550

// steerKeys are the keys tracked for release, in event order.
var steerKeys = [...]core.Key{core.KeyLeft, core.KeyRight}

// holdTracker synthesises key-up events for steering keys.
type holdTracker struct {
	window    int64
	lastPress map[core.Key]int64
}

func newHoldTracker(window int64) *holdTracker {
	return &holdTracker{
		window:    window,
		lastPress: make(map[core.Key]int64, len(steerKeys)),
	}
}

// Press records a press of k at now and returns the events to queue.
// Pressing one direction releases the other.
func (h *holdTracker) Press(k core.Key, now int64) []core.Event {
	if !isSteerKey(k) {
		return []core.Event{core.KeyDown(k)}
	}

	var events []core.Event
	for _, other := range steerKeys {
		if other == k {
			continue
		}
		if _, ok := h.lastPress[other]; ok {
			delete(h.lastPress, other)
			events = append(events, core.KeyUp(other))
		}
	}

	h.lastPress[k] = now
	return append(events, core.KeyDown(k))
}

// Expire returns key-up events for keys not pressed within the window.
func (h *holdTracker) Expire(now int64) []core.Event {
	var events []core.Event
	for _, k := range steerKeys {
		last, ok := h.lastPress[k]
		if !ok || now-last < h.window {
			continue
		}
		delete(h.lastPress, k)
		events = append(events, core.KeyUp(k))
	}
	return events
}

// held reports whether k is currently considered held.
func (h *holdTracker) held(k core.Key) bool {
	_, ok := h.lastPress[k]
	return ok
}

func isSteerKey(k core.Key) bool {
	for _, s := range steerKeys {
		if s == k {
			return true
		}
	}
	return false
}
