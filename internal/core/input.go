package core

// Key represents a logical game key, abstracted from physical key codes.
// Front ends translate their own key events into these.
type Key int

const (
	KeyNone    Key = iota
	KeyStart       // O - start a run from the waiting screen
	KeyLeft        // A, Left arrow - steer left
	KeyRight       // D, Right arrow - steer right
	KeyRestart     // R - play again after game over
	KeyQuit        // Q - quit after game over
	KeyEscape      // Esc - quit after game over
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyStart:
		return "Start"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRestart:
		return "Restart"
	case KeyQuit:
		return "Quit"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes discrete input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventClose // Window closed or interrupt received
)

// Event is one discrete input event delivered by a front end.
type Event struct {
	Kind EventKind
	Key  Key // KeyNone for EventClose
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// Close returns a window-close event.
func Close() Event {
	return Event{Kind: EventClose}
}

// InputFrame holds everything the game consumes during one loop iteration:
// the events drained since the previous frame, in arrival order, and the
// frame's timestamp in milliseconds from the clock.
type InputFrame struct {
	Events []Event
	Millis int64
}

// NewInputFrame creates an empty input frame stamped with the given time.
func NewInputFrame(millis int64) InputFrame {
	return InputFrame{Millis: millis}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// EventQueue buffers events between frames. Front ends push as events
// arrive and drain once per frame.
type EventQueue struct {
	pending []Event
}

// Push queues an event for the next frame.
func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// Drain returns an input frame holding every queued event and empties
// the queue.
func (q *EventQueue) Drain(millis int64) InputFrame {
	frame := NewInputFrame(millis)
	if len(q.pending) > 0 {
		frame.Events = make([]Event, len(q.pending))
		copy(frame.Events, q.pending)
		q.pending = q.pending[:0]
	}
	return frame
}
