// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Sequence is the monotonic piece id counter.
//
// The zero value is ready to use and starts at 0; the first id handed out
// is 1. A Sequence may be shared by several sessions in one process: Next
// is lock-free, and Release only rewinds when no later id has been issued.
type Sequence struct {
	_ pad
	n atomix.Uint64
	_ pad
}

// Next increments the counter and returns the new value.
func (s *Sequence) Next() uint64 {
	sw := spin.Wait{}
	for {
		cur := s.n.LoadAcquire()
		if s.n.CompareAndSwapAcqRel(cur, cur+1) {
			return cur + 1
		}
		sw.Once()
	}
}

// Release hands back id after a failed insert.
//
// The counter is decremented only if id is still the latest value issued,
// so the next successful Next returns id again. Reports whether the
// rollback took place.
func (s *Sequence) Release(id uint64) bool {
	if id == 0 {
		return false
	}
	return s.n.CompareAndSwapAcqRel(id, id-1)
}

// Load returns the most recently issued id, or 0 if none.
func (s *Sequence) Load() uint64 {
	return s.n.LoadAcquire()
}

// pad keeps the counter on its own cache line.
type pad [64]byte
