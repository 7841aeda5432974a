// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

// Container capacities of a session. They are part of the game contract,
// not configuration.
const (
	QueueCap = 5
	StackCap = 3
)

// NewQueue creates an empty upcoming-pieces queue of QueueCap slots.
func NewQueue() *Ring[Piece] { return NewRing[Piece](QueueCap) }

// NewReserve creates an empty reserve stack of StackCap slots.
func NewReserve() *Stack[Piece] { return NewStack[Piece](StackCap) }

// Outcome describes what an action moved.
type Outcome struct {
	Action    Action
	Transfers []Transfer[Piece]

	// Refill is set when the action itself succeeded but topping the queue
	// back up afterwards failed.
	Refill error
}

// IDs returns the ids of the pieces the action moved, in transfer order.
func (o Outcome) IDs() []uint64 {
	ids := make([]uint64, len(o.Transfers))
	for i, t := range o.Transfers {
		ids[i] = t.Elem.ID
	}
	return ids
}

// Session is one game's piece state: the upcoming queue, the reserve
// stack, the id sequence, and the group-swap inversion flag.
//
// A Session is driven by a single control flow. Every action runs to
// completion and reports its result as an Outcome plus an error; the
// session itself performs no I/O.
type Session struct {
	level    Level
	queue    *Ring[Piece]
	reserve  *Stack[Piece]
	refill   Replenisher
	inverted bool
	ledger   *ledger
}

func newSession(level Level, factory *Factory, seq *Sequence) (*Session, error) {
	s := &Session{
		level:   level,
		queue:   NewQueue(),
		reserve: NewReserve(),
		refill:  Replenisher{Factory: factory, Sequence: seq},
		ledger:  newLedger(),
	}
	_, err := s.refill.Populate(s.queue)
	s.ledger.rebuild(s.queue, s.reserve)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Play removes the front piece from the queue. Above Novice the queue is
// then refilled with one new piece.
func (s *Session) Play() (Outcome, error) {
	return s.do(ActionPlay, func(o *Outcome) error {
		p, err := s.queue.Dequeue()
		if err != nil {
			return err
		}
		o.Transfers = append(o.Transfers, Transfer[Piece]{Elem: p, From: InQueue, To: Board})

		if s.level.Replenishes() {
			s.replenish(o)
		}
		return nil
	})
}

// Insert generates one piece into the queue (Novice only).
func (s *Session) Insert() (Outcome, error) {
	return s.do(ActionInsert, func(o *Outcome) error {
		p, err := s.refill.Refill(s.queue)
		if err != nil {
			return err
		}
		o.Transfers = append(o.Transfers, Transfer[Piece]{Elem: p, From: Board, To: InQueue})
		return nil
	})
}

// Reserve moves the front piece of the queue onto the reserve stack and
// refills the queue. A new reservation clears the inversion flag.
//
// Both preconditions are checked before anything moves, so a full stack
// never costs the front piece.
func (s *Session) Reserve() (Outcome, error) {
	return s.do(ActionReserve, func(o *Outcome) error {
		if s.queue.Empty() {
			return ErrQueueEmpty
		}
		if s.reserve.Full() {
			return ErrStackFull
		}

		p, err := s.queue.Dequeue()
		if err != nil {
			return err
		}
		if err := s.reserve.Push(&p); err != nil {
			return err
		}
		s.inverted = false
		o.Transfers = append(o.Transfers, Transfer[Piece]{Elem: p, From: InQueue, To: InStack})

		s.replenish(o)
		return nil
	})
}

// UseReserved takes the top piece off the reserve stack.
func (s *Session) UseReserved() (Outcome, error) {
	return s.do(ActionUseReserved, func(o *Outcome) error {
		p, err := s.reserve.Pop()
		if err != nil {
			return err
		}
		o.Transfers = append(o.Transfers, Transfer[Piece]{Elem: p, From: InStack, To: Board})
		return nil
	})
}

// SwapOne exchanges the front of the queue with the top of the stack.
// See the package-level SwapOne.
func (s *Session) SwapOne() (Outcome, error) {
	return s.do(ActionSwapOne, func(o *Outcome) error {
		t, err := SwapOne(s.queue, s.reserve)
		o.Transfers = t
		return err
	})
}

// SwapGroup exchanges the queue's front run with the whole stack.
// See the package-level SwapGroup.
func (s *Session) SwapGroup() (Outcome, error) {
	return s.do(ActionSwapGroup, func(o *Outcome) error {
		t, err := SwapGroup(s.queue, s.reserve, &s.inverted)
		o.Transfers = t
		return err
	})
}

// Execute dispatches a by value.
func (s *Session) Execute(a Action) (Outcome, error) {
	switch a {
	case ActionPlay:
		return s.Play()
	case ActionInsert:
		return s.Insert()
	case ActionReserve:
		return s.Reserve()
	case ActionUseReserved:
		return s.UseReserved()
	case ActionSwapOne:
		return s.SwapOne()
	case ActionSwapGroup:
		return s.SwapGroup()
	}
	return Outcome{Action: a}, ErrNotOffered
}

func (s *Session) do(a Action, fn func(o *Outcome) error) (Outcome, error) {
	o := Outcome{Action: a}
	if !s.level.Offers(a) {
		return o, ErrNotOffered
	}
	err := fn(&o)
	s.ledger.rebuild(s.queue, s.reserve)
	return o, err
}

func (s *Session) replenish(o *Outcome) {
	p, err := s.refill.Refill(s.queue)
	if err != nil {
		o.Refill = err
		return
	}
	o.Transfers = append(o.Transfers, Transfer[Piece]{Elem: p, From: Board, To: InQueue})
}

// Level returns the session's feature level.
func (s *Session) Level() Level { return s.level }

// Queue returns the upcoming pieces, front first.
func (s *Session) Queue() []Piece { return s.queue.Snapshot() }

// Reserved returns the reserve stack, top first.
func (s *Session) Reserved() []Piece { return s.reserve.Snapshot() }

// Next returns the piece at the front of the queue.
func (s *Session) Next() (Piece, error) { return s.queue.Front() }

// PeekReserved returns the top of the reserve stack without using it.
func (s *Session) PeekReserved() (Piece, error) { return s.reserve.Peek() }

// Inverted reports whether the current stack group has already been
// inverted by a group swap since the last reservation.
func (s *Session) Inverted() bool { return s.inverted }

// Locate reports where the piece with the given id sits, if it is still
// in the queue or the stack.
func (s *Session) Locate(id uint64) (Location, bool) { return s.ledger.locate(id) }

// LastID returns the most recently issued piece id.
func (s *Session) LastID() uint64 { return s.refill.Sequence.Load() }
