package clouds

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyQ
	KeyW
	KeyCount
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyQ:
		return "q"
	case KeyW:
		return "w"
	default:
		return "none"
	}
}

// Action is what happened to a key.
type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

// EventKind distinguishes input events.
type EventKind int

const (
	// EventKey is a keyboard transition; Key and Action are set.
	EventKey EventKind = iota
	// EventClose is an OS-level request to close the window.
	EventClose
)

// Event is one input event drained from the window.
type Event struct {
	Kind   EventKind
	Key    Key
	Action Action
}

// KeyEvent builds a keyboard event.
func KeyEvent(key Key, action Action) Event {
	return Event{Kind: EventKey, Key: key, Action: action}
}

// CloseEvent builds a close request event.
func CloseEvent() Event {
	return Event{Kind: EventClose}
}

// EventQueue buffers events between polls.
// Platform callbacks Push; the render loop Drains once per frame.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
