// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import "iter"

// Ring is a fixed-capacity circular FIFO queue.
//
// Based on a plain ring buffer with an explicit element count, so any
// capacity (not only powers of 2) is exact. Elements are logically present
// from head for count slots, wrapping modulo the capacity.
//
// Ring is not safe for concurrent use.
//
// Memory: O(capacity), allocated once at construction
type Ring[T any] struct {
	buffer []T
	head   int // Oldest element
	tail   int // Next free slot
	count  int
}

// NewRing creates an empty ring holding at most capacity elements.
// Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("tstack: capacity must be >= 1")
	}
	return &Ring[T]{buffer: make([]T, capacity)}
}

// Enqueue appends a copy of *elem at the back of the ring.
// Returns ErrQueueFull, leaving the ring untouched, if it is full.
func (q *Ring[T]) Enqueue(elem *T) error {
	if q.Full() {
		return ErrQueueFull
	}

	q.buffer[q.tail] = *elem
	q.tail = q.next(q.tail)
	q.count++
	return nil
}

// Dequeue removes and returns the front element.
// Returns (zero-value, ErrQueueEmpty) if the ring is empty.
//
// The vacated slot keeps its stale content until overwritten.
func (q *Ring[T]) Dequeue() (T, error) {
	if q.Empty() {
		var zero T
		return zero, ErrQueueEmpty
	}

	elem := q.buffer[q.head]
	q.head = q.next(q.head)
	q.count--
	return elem, nil
}

// Front returns the front element without removing it.
func (q *Ring[T]) Front() (T, error) {
	if q.Empty() {
		var zero T
		return zero, ErrQueueEmpty
	}
	return q.buffer[q.head], nil
}

// Empty reports whether the ring holds no elements.
func (q *Ring[T]) Empty() bool { return q.count == 0 }

// Full reports whether the ring is at capacity.
func (q *Ring[T]) Full() bool { return q.count == len(q.buffer) }

// Len returns the number of elements present.
func (q *Ring[T]) Len() int { return q.count }

// Cap returns the ring capacity.
func (q *Ring[T]) Cap() int { return len(q.buffer) }

// Snapshot returns the present elements in FIFO order.
func (q *Ring[T]) Snapshot() []T {
	out := make([]T, 0, q.count)
	for elem := range q.All() {
		out = append(out, elem)
	}
	return out
}

// All yields the present elements front to back without mutating the ring.
func (q *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, idx := 0, q.head; i < q.count; i, idx = i+1, q.next(idx) {
			if !yield(q.buffer[idx]) {
				return
			}
		}
	}
}

// at returns the slot holding the i-th element from the front.
// The caller guarantees 0 <= i < Len().
func (q *Ring[T]) at(i int) *T {
	return &q.buffer[(q.head+i)%len(q.buffer)]
}

func (q *Ring[T]) next(idx int) int {
	return (idx + 1) % len(q.buffer)
}
