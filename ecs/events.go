package ecs

import "github.com/jakecoffman/cp"

// Explosion asks the renderer to spawn decorative particles.
type Explosion struct {
	Pos       cp.Vector
	Color     Color
	Kind      Kind
	Particles int
}

// EventQueue is a simple FIFO queue of explosion events.
type EventQueue struct {
	items []Explosion
}

// Push adds an event.
func (q *EventQueue) Push(evt Explosion) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Explosion {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
