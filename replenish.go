// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

// Replenisher keeps a piece queue topped up.
type Replenisher struct {
	Factory  *Factory
	Sequence *Sequence
}

// Refill generates one piece and enqueues it.
//
// If the queue rejects the piece, its id is released back to the sequence
// and the enqueue error is returned, so the next generated piece reuses it.
func (r *Replenisher) Refill(q Producer[Piece]) (Piece, error) {
	p := r.Factory.Generate(r.Sequence)
	if err := q.Enqueue(&p); err != nil {
		r.Sequence.Release(p.ID)
		return Piece{}, err
	}
	return p, nil
}

// Populate refills q until it is full and returns the pieces added.
// It stops at the first failed refill and returns that error.
func (r *Replenisher) Populate(q Queue[Piece]) ([]Piece, error) {
	var added []Piece
	for !q.Full() {
		p, err := r.Refill(q)
		if err != nil {
			return added, err
		}
		added = append(added, p)
	}
	return added, nil
}
