package bounded

import (
	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/go-utils/v4/log"
)

// Stack fixed capacity last-in-first-out stack over contiguous storage
type Stack[T any] struct {
	buf []T
}

// NewStack create a fixed capacity stack
func NewStack[T any](capacity int) (*Stack[T], error) {
	if capacity < 0 {
		return nil, errors.Errorf("capacity must not be negative, got %d", capacity)
	}

	log.Shared.Debug("create stack", zap.Int("capacity", capacity))
	return &Stack[T]{
		buf: make([]T, 0, capacity),
	}, nil
}

// Push place v on top of the stack,
// returns ErrFull when the stack is at capacity
func (s *Stack[T]) Push(v T) error {
	if len(s.buf) == cap(s.buf) {
		return ErrFull
	}

	s.buf = append(s.buf, v)
	return nil
}

// Pop remove and return the value on top of the stack,
// ok is false when the stack is empty
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.buf)
	if n == 0 {
		return v, false
	}

	v = s.buf[n-1]
	clear(s.buf[n-1:]) // avoid memory leak
	s.buf = s.buf[:n-1]
	return v, true
}

// Peek return the value Pop would remove, without removing it
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.buf) == 0 {
		return v, false
	}

	return s.buf[len(s.buf)-1], true
}

// Len return the number of elements currently held
func (s *Stack[T]) Len() int {
	return len(s.buf)
}

// Cap return the fixed capacity
func (s *Stack[T]) Cap() int {
	return cap(s.buf)
}
