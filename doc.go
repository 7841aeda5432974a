// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tstack provides the piece-management engine of a Tetris-like
// game: a bounded circular queue of upcoming pieces and a bounded stack of
// reserved pieces, plus the operations that move pieces between them.
//
// The engine offers three feature levels over the same two containers:
//
//   - Novice: play, insert
//   - Adventurer: play (auto-refill), reserve, use reserved
//   - Master: adventurer + swap one, swap group
//
// # Quick Start
//
//	s, err := tstack.New().Level(tstack.Master).Build()
//	if err != nil {
//	    return err
//	}
//
//	out, err := s.Reserve()
//	if tstack.IsWouldBlock(err) {
//	    // queue empty or stack full - nothing moved
//	}
//	for _, t := range out.Transfers {
//	    fmt.Printf("%v moved %s -> %s\n", t.Elem, t.From, t.To)
//	}
//
//	fmt.Println(s.Queue())    // front first
//	fmt.Println(s.Reserved()) // top first
//
// # Containers
//
// [Ring] and [Stack] are generic, fixed-capacity and allocation-free after
// construction. They are usable on their own:
//
//	q := tstack.NewRing[int](5)
//	v := 42
//	if err := q.Enqueue(&v); err != nil {
//	    // full
//	}
//	v, err := q.Dequeue()
//
// A session always uses [QueueCap] = 5 and [StackCap] = 3; capacities are
// part of the game contract, not configuration.
//
// # Exchanges
//
// [SwapOne] trades the queue front with the stack top. [SwapGroup] trades
// the queue's first [StackCap] pieces with the whole stack:
//
//	queue front[i] = stack[n-1-i]
//	stack[i]       = front[i]        first swap after a reservation
//	stack[i]       = front[n-1-i]    following swaps (restore order)
//
// Both are pure content exchanges: no container changes length and no
// piece is dropped. Each returns the [Transfer] list describing what moved,
// with pre-swap values.
//
// # Piece Ids
//
// Ids come from a [Sequence]. A piece generated for a queue that turns out
// to be full gives its id back, so ids stay gap-free across failed inserts.
// A Sequence is lock-free and may be shared by several sessions.
//
// # Error Handling
//
// No operation panics on a full or empty container. Failures are returned
// as errors wrapping [ErrWouldBlock], sourced from [code.hybscloud.com/iox]:
//
//	ErrQueueFull, ErrQueueEmpty, ErrStackFull, ErrStackEmpty, ErrUnavailable
//
// Use errors.Is for a specific condition or [IsWouldBlock] for all of them.
// [ErrNotOffered] reports an action outside the session's level.
//
// # Thread Safety
//
// Sessions, rings and stacks are single-threaded. Only [Sequence] is safe
// for concurrent use.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] and [code.hybscloud.com/spin] for the id
// sequence, and [github.com/kamstrup/intmap] for the piece ledger.
package tstack
