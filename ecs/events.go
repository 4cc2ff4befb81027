package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventKey = "key"

// KeyEvent is a key press or release. Key uses web key names ("w",
// "ArrowUp"). Repeat marks a synthesized key-down for a key still held.
type KeyEvent struct {
	Key    string
	Down   bool
	Repeat bool
}

// EventQueue is a simple FIFO queue cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
