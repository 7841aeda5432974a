// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a container operation cannot proceed right now.
//
// Every capacity and precondition failure in this package wraps it, so
// callers that only care about "try again after another action" can test
// a single condition:
//
//	if tstack.IsWouldBlock(err) {
//	    // queue/stack full or empty, or swap preconditions unmet
//	}
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrQueueFull is returned by Enqueue on a full queue.
	ErrQueueFull = &kindError{msg: "tstack: queue full"}

	// ErrQueueEmpty is returned by Dequeue and Front on an empty queue.
	ErrQueueEmpty = &kindError{msg: "tstack: queue empty"}

	// ErrStackFull is returned by Push on a full stack.
	ErrStackFull = &kindError{msg: "tstack: stack full"}

	// ErrStackEmpty is returned by Pop and Peek on an empty stack.
	ErrStackEmpty = &kindError{msg: "tstack: stack empty"}

	// ErrUnavailable is returned by the swap operations when either side
	// does not hold enough pieces for the exchange.
	ErrUnavailable = &kindError{msg: "tstack: pieces unavailable for exchange"}
)

// ErrNotOffered is returned when a session is asked for an action its
// level does not provide. Unlike the container errors it is a real
// failure: retrying will not help.
var ErrNotOffered = errors.New("tstack: action not offered at this level")

// kindError is a recoverable container condition.
// It matches both itself and ErrWouldBlock under errors.Is.
type kindError struct {
	msg string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return iox.ErrWouldBlock }

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil and every container condition in this package.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
