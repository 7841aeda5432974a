// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import (
	"fmt"
	"math/rand"
	"time"
)

// Shape is the tetromino category of a piece.
type Shape uint8

// Shapes a factory can produce.
const (
	ShapeI Shape = iota + 1
	ShapeO
	ShapeT
	ShapeL
)

// Shapes lists every producible shape in generation order.
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeL}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	}
	return "?"
}

// Piece is an abstract game piece: a shape and a process-unique id.
//
// Pieces are plain values. Storing one in a container or exchanging it
// between containers copies it; no two slots ever alias the same piece.
type Piece struct {
	Shape Shape
	ID    uint64
}

func (p Piece) String() string {
	return fmt.Sprintf("[%s, %d]", p.Shape, p.ID)
}

// Factory generates pieces with uniformly random shapes.
//
// A Factory is not safe for concurrent use; each session owns one.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory drawing shapes from src.
// A nil src seeds a fresh source from the clock.
func NewFactory(src rand.Source) *Factory {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Factory{rng: rand.New(src)}
}

// Generate returns a new piece whose id is the next value of seq.
func (f *Factory) Generate(seq *Sequence) Piece {
	return Piece{
		Shape: Shapes[f.rng.Intn(len(Shapes))],
		ID:    seq.Next(),
	}
}
