// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

// SwapOne exchanges the queue's front element with the stack's top element
// in place.
//
// Both containers keep their counts and indices; only the two slot contents
// trade places. Returns ErrUnavailable without touching either container if
// the queue or the stack is empty.
//
// The returned transfers reference the pre-swap values: the former front
// moving queue→stack, then the former top moving stack→queue.
func SwapOne[T any](q *Ring[T], s *Stack[T]) ([]Transfer[T], error) {
	if q.Empty() || s.Empty() {
		return nil, ErrUnavailable
	}

	front, top := q.at(0), s.slot(s.top)
	was := [2]T{*front, *top}
	*front, *top = was[1], was[0]

	return []Transfer[T]{
		{Elem: was[0], From: InQueue, To: InStack},
		{Elem: was[1], From: InStack, To: InQueue},
	}, nil
}

// SwapGroup exchanges the queue's front run of s.Cap() elements with the
// entire stack.
//
// Requires a full stack and at least s.Cap() queued elements; otherwise it
// returns ErrUnavailable and mutates nothing.
//
// With n = s.Cap(), F the front run (F[0] at the head) and S the stack
// slots (S[n-1] on top):
//
//	queue front[i] = S[n-1-i]                    always
//	stack slot[i]  = F[i]       if !*inverted    fresh reservations
//	stack slot[i]  = F[n-1-i]   if  *inverted    undo the previous inversion
//
// *inverted is set afterwards, so repeated group swaps without a new
// reservation alternate between inverting and restoring the stack group.
//
// For each stack slot in ascending order, two transfers are emitted: the
// element entering the slot (queue→stack) and the element it displaced
// (stack→queue), both with pre-swap values. Only contents move; neither
// container's indices change.
func SwapGroup[T any](q *Ring[T], s *Stack[T], inverted *bool) ([]Transfer[T], error) {
	n := s.Cap()
	if !s.Full() || q.Len() < n {
		return nil, ErrUnavailable
	}

	front := make([]T, n)
	for i := range n {
		front[i] = *q.at(i)
	}
	slots := s.Slots()

	transfers := make([]Transfer[T], 0, 2*n)
	for i := range n {
		*q.at(i) = slots[n-1-i]

		in := front[i]
		if *inverted {
			in = front[n-1-i]
		}
		*s.slot(i) = in

		transfers = append(transfers,
			Transfer[T]{Elem: in, From: InQueue, To: InStack},
			Transfer[T]{Elem: slots[i], From: InStack, To: InQueue},
		)
	}

	*inverted = true
	return transfers, nil
}
