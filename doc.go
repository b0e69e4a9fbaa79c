// Package bounded fixed-capacity containers for Golang
//
// # Modules
//
// Contains three containers, each backed by a single allocation whose
// size is decided at construction and never grown:
//
//   - `deque.go`: double-ended queue over a circular buffer
//   - `queue.go`: first-in-first-out queue on top of the deque
//   - `stack.go`: last-in-first-out stack over contiguous storage
//
// Pushing into a full container returns ErrFull, popping or peeking an
// empty one returns ok == false. None of the containers is
// goroutine-safe, wrap them in a lock if shared between goroutines.
package bounded
