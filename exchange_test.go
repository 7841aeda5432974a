// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/tstack"
)

// fill builds a ring and a stack from literal contents.
// stack lists slots base first; the ring is rotated by skew first so the
// front run crosses the wrap point.
func fill(t *testing.T, skew int, queue, stack []int) (*tstack.Ring[int], *tstack.Stack[int]) {
	t.Helper()
	q := tstack.NewRing[int](5)
	for i := range skew {
		v := -i
		q.Enqueue(&v)
		if _, err := q.Dequeue(); err != nil {
			t.Fatalf("skew Dequeue: %v", err)
		}
	}
	for _, v := range queue {
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", v, err)
		}
	}
	s := tstack.NewStack[int](3)
	for _, v := range stack {
		if err := s.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}
	return q, s
}

// =============================================================================
// SwapOne
// =============================================================================

// TestSwapOne tests the in-place front/top exchange and its transfers.
func TestSwapOne(t *testing.T) {
	q, s := fill(t, 0, []int{4, 5, 6}, []int{1, 2, 3})

	transfers, err := tstack.SwapOne(q, s)
	if err != nil {
		t.Fatalf("SwapOne: %v", err)
	}

	if got := q.Snapshot(); !slices.Equal(got, []int{3, 5, 6}) {
		t.Fatalf("queue: got %v, want [3 5 6]", got)
	}
	if got := s.Slots(); !slices.Equal(got, []int{1, 2, 4}) {
		t.Fatalf("stack: got %v, want [1 2 4]", got)
	}
	if q.Len() != 3 || s.Len() != 3 {
		t.Fatalf("lengths: got %d/%d, want 3/3", q.Len(), s.Len())
	}

	want := []tstack.Transfer[int]{
		{Elem: 4, From: tstack.InQueue, To: tstack.InStack},
		{Elem: 3, From: tstack.InStack, To: tstack.InQueue},
	}
	if !slices.Equal(transfers, want) {
		t.Fatalf("transfers: got %v, want %v", transfers, want)
	}
}

// TestSwapOneSelfInverse tests that two swaps restore both containers.
func TestSwapOneSelfInverse(t *testing.T) {
	q, s := fill(t, 3, []int{7, 8, 9, 10}, []int{1, 2})
	queue, stack := q.Snapshot(), s.Slots()

	for i := range 2 {
		if _, err := tstack.SwapOne(q, s); err != nil {
			t.Fatalf("SwapOne(%d): %v", i, err)
		}
	}

	if got := q.Snapshot(); !slices.Equal(got, queue) {
		t.Fatalf("queue: got %v, want %v", got, queue)
	}
	if got := s.Slots(); !slices.Equal(got, stack) {
		t.Fatalf("stack: got %v, want %v", got, stack)
	}
}

// TestSwapOneUnavailable tests that an empty side fails without mutation.
func TestSwapOneUnavailable(t *testing.T) {
	tests := []struct {
		name         string
		queue, stack []int
	}{
		{"empty stack", []int{1, 2, 3, 4, 5}, nil},
		{"empty queue", nil, []int{1}},
		{"both empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, s := fill(t, 0, tt.queue, tt.stack)
			transfers, err := tstack.SwapOne(q, s)
			if !errors.Is(err, tstack.ErrUnavailable) {
				t.Fatalf("SwapOne: got %v, want ErrUnavailable", err)
			}
			if transfers != nil {
				t.Fatalf("transfers: got %v, want nil", transfers)
			}
			if got := q.Snapshot(); !slices.Equal(got, tt.queue) {
				t.Fatalf("queue: got %v, want %v", got, tt.queue)
			}
			if got := s.Slots(); !slices.Equal(got, tt.stack) {
				t.Fatalf("stack: got %v, want %v", got, tt.stack)
			}
		})
	}
}

// =============================================================================
// SwapGroup
// =============================================================================

// TestSwapGroupFresh tests the first group swap after a reservation.
func TestSwapGroupFresh(t *testing.T) {
	q, s := fill(t, 0, []int{4, 5, 6, 7, 8}, []int{1, 2, 3})
	inverted := false

	transfers, err := tstack.SwapGroup(q, s, &inverted)
	if err != nil {
		t.Fatalf("SwapGroup: %v", err)
	}

	// Queue receives the stack base-to-top reversed: S[2], S[1], S[0]
	if got := q.Snapshot(); !slices.Equal(got, []int{3, 2, 1, 7, 8}) {
		t.Fatalf("queue: got %v, want [3 2 1 7 8]", got)
	}
	// Stack takes the front run positionally
	if got := s.Slots(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Fatalf("stack: got %v, want [4 5 6]", got)
	}
	if top, _ := s.Peek(); top != 6 {
		t.Fatalf("top: got %d, want 6", top)
	}
	if !inverted {
		t.Fatal("inverted: got false, want true")
	}

	want := []tstack.Transfer[int]{
		{Elem: 4, From: tstack.InQueue, To: tstack.InStack},
		{Elem: 1, From: tstack.InStack, To: tstack.InQueue},
		{Elem: 5, From: tstack.InQueue, To: tstack.InStack},
		{Elem: 2, From: tstack.InStack, To: tstack.InQueue},
		{Elem: 6, From: tstack.InQueue, To: tstack.InStack},
		{Elem: 3, From: tstack.InStack, To: tstack.InQueue},
	}
	if !slices.Equal(transfers, want) {
		t.Fatalf("transfers: got %v, want %v", transfers, want)
	}
}

// TestSwapGroupRestores tests that a second swap without reservations
// restores the original stack group.
func TestSwapGroupRestores(t *testing.T) {
	q, s := fill(t, 0, []int{4, 5, 6, 7, 8}, []int{1, 2, 3})
	inverted := false

	if _, err := tstack.SwapGroup(q, s, &inverted); err != nil {
		t.Fatalf("SwapGroup #1: %v", err)
	}
	if _, err := tstack.SwapGroup(q, s, &inverted); err != nil {
		t.Fatalf("SwapGroup #2: %v", err)
	}

	if got := s.Slots(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("stack: got %v, want [1 2 3]", got)
	}
	if got := q.Snapshot(); !slices.Equal(got, []int{6, 5, 4, 7, 8}) {
		t.Fatalf("queue: got %v, want [6 5 4 7 8]", got)
	}
	if !inverted {
		t.Fatal("inverted: got false, want true")
	}

	// A third swap returns to the state after the first
	if _, err := tstack.SwapGroup(q, s, &inverted); err != nil {
		t.Fatalf("SwapGroup #3: %v", err)
	}
	if got := s.Slots(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Fatalf("stack after #3: got %v, want [4 5 6]", got)
	}
	if got := q.Snapshot(); !slices.Equal(got, []int{3, 2, 1, 7, 8}) {
		t.Fatalf("queue after #3: got %v, want [3 2 1 7 8]", got)
	}
}

// TestSwapGroupWraparound tests a front run that crosses the ring's wrap point.
func TestSwapGroupWraparound(t *testing.T) {
	q, s := fill(t, 4, []int{10, 11, 12, 13}, []int{1, 2, 3})
	inverted := false

	if _, err := tstack.SwapGroup(q, s, &inverted); err != nil {
		t.Fatalf("SwapGroup: %v", err)
	}
	if got := q.Snapshot(); !slices.Equal(got, []int{3, 2, 1, 13}) {
		t.Fatalf("queue: got %v, want [3 2 1 13]", got)
	}
	if got := s.Slots(); !slices.Equal(got, []int{10, 11, 12}) {
		t.Fatalf("stack: got %v, want [10 11 12]", got)
	}
}

// TestSwapGroupUnavailable tests the preconditions leave everything untouched.
func TestSwapGroupUnavailable(t *testing.T) {
	tests := []struct {
		name         string
		queue, stack []int
	}{
		{"stack has 2", []int{4, 5, 6, 7, 8}, []int{1, 2}},
		{"queue has 2", []int{4, 5}, []int{1, 2, 3}},
		{"stack empty", []int{4, 5, 6}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, s := fill(t, 1, tt.queue, tt.stack)
			inverted := false
			if _, err := tstack.SwapGroup(q, s, &inverted); !errors.Is(err, tstack.ErrUnavailable) {
				t.Fatalf("SwapGroup: got %v, want ErrUnavailable", err)
			}
			if inverted {
				t.Fatal("inverted: got true, want false")
			}
			if got := q.Snapshot(); !slices.Equal(got, tt.queue) {
				t.Fatalf("queue: got %v, want %v", got, tt.queue)
			}
			if got := s.Slots(); !slices.Equal(got, tt.stack) {
				t.Fatalf("stack: got %v, want %v", got, tt.stack)
			}
		})
	}
}
