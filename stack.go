// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import "iter"

// Stack is a fixed-capacity LIFO stack.
//
// Slot 0 is the base; top indexes the most recently pushed element and is
// -1 when the stack is empty.
//
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	buffer []T
	top    int
}

// NewStack creates an empty stack holding at most capacity elements.
// Panics if capacity < 1.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		panic("tstack: capacity must be >= 1")
	}
	return &Stack[T]{buffer: make([]T, capacity), top: -1}
}

// Push places a copy of *elem on top of the stack.
// Returns ErrStackFull, leaving the stack untouched, if it is full.
func (s *Stack[T]) Push(elem *T) error {
	if s.Full() {
		return ErrStackFull
	}

	s.top++
	s.buffer[s.top] = *elem
	return nil
}

// Pop removes and returns the top element.
// Returns (zero-value, ErrStackEmpty) if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.Empty() {
		var zero T
		return zero, ErrStackEmpty
	}

	elem := s.buffer[s.top]
	s.top--
	return elem, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.Empty() {
		var zero T
		return zero, ErrStackEmpty
	}
	return s.buffer[s.top], nil
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.top == -1 }

// Full reports whether the stack is at capacity.
func (s *Stack[T]) Full() bool { return s.top == len(s.buffer)-1 }

// Len returns the number of elements present.
func (s *Stack[T]) Len() int { return s.top + 1 }

// Cap returns the stack capacity.
func (s *Stack[T]) Cap() int { return len(s.buffer) }

// Snapshot returns the present elements from top to base.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, 0, s.Len())
	for elem := range s.All() {
		out = append(out, elem)
	}
	return out
}

// All yields the present elements from top to base.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.buffer[i]) {
				return
			}
		}
	}
}

// Slots returns the present elements indexed by slot, base first.
func (s *Stack[T]) Slots() []T {
	out := make([]T, s.Len())
	copy(out, s.buffer[:s.top+1])
	return out
}

// slot returns the physical slot i. The caller guarantees 0 <= i < Len().
func (s *Stack[T]) slot(i int) *T {
	return &s.buffer[i]
}
