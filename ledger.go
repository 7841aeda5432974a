// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Location is where a live piece currently sits.
//
// For the queue, Slot is the logical position from the front (0 = next to
// play). For the stack, Slot is the physical index (0 = base).
type Location struct {
	Container Container
	Slot      int
}

// ledger indexes live pieces by id.
type ledger struct {
	where *intmap.Map[uint64, Location]
}

func newLedger() *ledger {
	return &ledger{where: intmap.New[uint64, Location](QueueCap + StackCap)}
}

// rebuild re-indexes both containers. A piece found twice means two slots
// alias one piece, which the containers never allow; it panics.
func (l *ledger) rebuild(q *Ring[Piece], s *Stack[Piece]) {
	l.where.Clear()

	i := 0
	for p := range q.All() {
		l.put(p.ID, Location{Container: InQueue, Slot: i})
		i++
	}
	for slot, p := range s.Slots() {
		l.put(p.ID, Location{Container: InStack, Slot: slot})
	}
}

func (l *ledger) put(id uint64, loc Location) {
	if prev, ok := l.where.Get(id); ok {
		panic(fmt.Sprintf("tstack: piece %d held in %s and %s", id, prev.Container, loc.Container))
	}
	l.where.Put(id, loc)
}

func (l *ledger) locate(id uint64) (Location, bool) {
	return l.where.Get(id)
}
