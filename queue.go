package bounded

import (
	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/go-utils/v4/log"
)

// Queue fixed capacity first-in-first-out queue.
//
// A Queue is a Deque restricted to one insertion end and one removal
// end, it shares the same circular buffer underneath.
type Queue[T any] struct {
	d *Deque[T]
}

// NewQueue create a fixed capacity queue
func NewQueue[T any](capacity int) (*Queue[T], error) {
	d, err := NewDeque[T](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "create inner deque")
	}

	log.Shared.Debug("create queue", zap.Int("capacity", capacity))
	return &Queue[T]{d: d}, nil
}

// Enqueue place v at the end of the queue,
// returns ErrFull when the queue is at capacity
func (q *Queue[T]) Enqueue(v T) error {
	return q.d.PushBack(v)
}

// Dequeue remove and return the value at the front of the queue,
// ok is false when the queue is empty
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	return q.d.PopFront()
}

// Peek return the value Dequeue would remove, without removing it
func (q *Queue[T]) Peek() (v T, ok bool) {
	return q.d.Front()
}

// Len return the number of elements currently held
func (q *Queue[T]) Len() int {
	return q.d.Len()
}

// Cap return the fixed capacity
func (q *Queue[T]) Cap() int {
	return q.d.Cap()
}
