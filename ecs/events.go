package ecs

// Queue is a typed FIFO of per-tick messages. Each queue has exactly one
// consuming system which drains it once per tick.
type Queue[T any] struct {
	items []T
}

// Push adds an event.
func (q *Queue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops queued events without returning them.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
