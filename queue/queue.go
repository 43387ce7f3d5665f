// Package queue provides the bounded blocking conduit bridging the
// stream adapters to collaborating producer/consumer code. The default
// capacity of one enforces backpressure: a reader never outruns its
// consumer by more than a single buffered message.
package queue

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("queue: closed")
	ErrFull   = errors.New("queue: full")
)

// Queue is an order-preserving bounded conduit. Closing is a one-way,
// idempotent transition; values buffered before Close are still
// delivered to Pop.
type Queue[T any] struct {
	ch   chan T
	done chan struct{}
	once sync.Once
}

// New creates a queue. Capacities below one are raised to one.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{
		ch:   make(chan T, capacity),
		done: make(chan struct{}),
	}
}

// Push blocks until the value is buffered or the queue is closed.
func (q *Queue[T]) Push(v T) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}
	select {
	case q.ch <- v:
		return nil
	case <-q.done:
		return ErrClosed
	}
}

// Pop blocks until a value is available or the queue is closed and
// drained. ok is false only once no further value will ever arrive.
func (q *Queue[T]) Pop() (v T, ok bool) {
	select {
	case v = <-q.ch:
		return v, true
	case <-q.done:
		select {
		case v = <-q.ch:
			return v, true
		default:
			var zero T
			return zero, false
		}
	}
}

// TryPush is the non-blocking Push for event-driven hosts.
func (q *Queue[T]) TryPush(v T) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}
	select {
	case q.ch <- v:
		return nil
	default:
		return ErrFull
	}
}

// TryPop is the non-blocking Pop; ok is false when nothing is buffered
// right now. Poll it together with Done to notice teardown.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	select {
	case v = <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Done is closed when the queue is closed, for select-based hosts.
func (q *Queue[T]) Done() <-chan struct{} {
	return q.done
}

// Close marks the queue terminal. Safe to call from either side, any
// number of times.
func (q *Queue[T]) Close() {
	q.once.Do(func() {
		close(q.done)
	})
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}
