package bounded

import (
	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/go-utils/v4/log"
)

// Deque fixed capacity double-ended queue backed by a circular buffer.
//
// All operations are O(1). Capacity is decided at construction and never
// grows, pushing into a full deque returns ErrFull. Not goroutine-safe,
// callers sharing a deque between goroutines must add their own lock.
type Deque[T any] struct {
	// buf[head : head+count) modulo len(buf) hold the live elements,
	// front first. head is not stored, it is derived from tail and count
	// so the two cursors cannot drift apart.
	buf   []T
	count int
	// tail one past the back element, advances forward on PushBack
	tail int
}

// NewDeque create a fixed capacity deque
//
// capacity 0 is legal, every push fails with ErrFull and every
// pop/peek returns nothing.
func NewDeque[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, errors.Errorf("capacity must not be negative, got %d", capacity)
	}

	log.Shared.Debug("create deque", zap.Int("capacity", capacity))
	return &Deque[T]{
		buf: make([]T, capacity),
	}, nil
}

// head index of the front element, only meaningful when count > 0
func (d *Deque[T]) head() int {
	return (d.tail + len(d.buf) - d.count) % len(d.buf)
}

// PushFront insert v before the front element
func (d *Deque[T]) PushFront(v T) error {
	if d.count == len(d.buf) {
		return ErrFull
	}

	idx := (d.tail + len(d.buf) - d.count - 1) % len(d.buf)
	d.buf[idx] = v
	d.count++
	return nil
}

// PushBack append v behind the back element
func (d *Deque[T]) PushBack(v T) error {
	if d.count == len(d.buf) {
		return ErrFull
	}

	d.buf[d.tail] = v
	d.tail = (d.tail + 1) % len(d.buf)
	d.count++
	return nil
}

// PopFront remove and return the front element,
// ok is false when the deque is empty
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}

	idx := d.head()
	v = d.buf[idx]
	clear(d.buf[idx : idx+1]) // avoid memory leak
	d.count--
	return v, true
}

// PopBack remove and return the back element,
// ok is false when the deque is empty
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}

	d.tail = (d.tail + len(d.buf) - 1) % len(d.buf)
	v = d.buf[d.tail]
	clear(d.buf[d.tail : d.tail+1]) // avoid memory leak
	d.count--
	return v, true
}

// Front return the element PopFront would remove, without removing it
func (d *Deque[T]) Front() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}

	return d.buf[d.head()], true
}

// Back return the element PopBack would remove, without removing it
func (d *Deque[T]) Back() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}

	return d.buf[(d.tail+len(d.buf)-1)%len(d.buf)], true
}

// Len return the number of elements currently held
func (d *Deque[T]) Len() int {
	return d.count
}

// Cap return the fixed capacity
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

// IsEmpty whether the deque holds no element
func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

// IsFull whether the next push would fail with ErrFull
func (d *Deque[T]) IsFull() bool {
	return d.count == len(d.buf)
}

// Clear drop every element, capacity is kept
func (d *Deque[T]) Clear() {
	clear(d.buf) // avoid memory leak
	d.count = 0
	d.tail = 0
}
