// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

// Queue is the combined producer-consumer interface for a bounded FIFO.
//
// Both Enqueue and Dequeue fail with an error wrapping ErrWouldBlock
// instead of blocking when they cannot proceed (full or empty).
//
// Example:
//
//	q := tstack.NewRing[tstack.Piece](tstack.QueueCap)
//
//	// Enqueue
//	p := tstack.Piece{Shape: tstack.ShapeT, ID: 1}
//	if err := q.Enqueue(&p); err != nil {
//	    // Handle full queue
//	}
//
//	// Dequeue
//	p, err := q.Dequeue()
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Front() (T, error)
	Len() int
	Cap() int
	Empty() bool
	Full() bool
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer; the queue stores a copy of the
// pointed-to value, so the original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element at the back of the queue.
	// Returns nil on success, ErrQueueFull if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the front element by value.
	// Returns (zero-value, ErrQueueEmpty) if the queue is empty.
	Dequeue() (T, error)
}

var _ Queue[Piece] = (*Ring[Piece])(nil)

// Container names where a piece sits or moves to.
type Container uint8

const (
	// Board is outside both containers: a played piece or a used reserve,
	// and the origin of freshly generated pieces.
	Board Container = iota
	// InQueue is the upcoming-pieces queue.
	InQueue
	// InStack is the reserve stack.
	InStack
)

func (c Container) String() string {
	switch c {
	case InQueue:
		return "queue"
	case InStack:
		return "stack"
	default:
		return "board"
	}
}

// Transfer records one element moving between containers.
// Elem is the value as it was before the move.
type Transfer[T any] struct {
	Elem T
	From Container
	To   Container
}
