// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import "math/rand"

// Options configures session creation.
type Options struct {
	level Level

	// Shape randomness; nil seeds from the clock
	source rand.Source

	// Id counter; nil gives the session its own
	sequence *Sequence
}

// Builder creates sessions with fluent configuration.
//
// Queue and stack capacities are fixed (QueueCap, StackCap) and cannot be
// configured.
//
// Example:
//
//	// Full feature set, shapes from the clock
//	s, err := tstack.New().Build()
//
//	// Reproducible shapes for tests
//	s, err := tstack.New().Level(tstack.Adventurer).Source(rand.NewSource(1)).Build()
//
//	// Two sessions drawing ids from one counter
//	var seq tstack.Sequence
//	a, _ := tstack.New().Sequence(&seq).Build()
//	b, _ := tstack.New().Sequence(&seq).Build()
type Builder struct {
	opts Options
}

// New creates a session builder at the Master level.
func New() *Builder {
	return &Builder{opts: Options{level: Master}}
}

// Level selects the feature level.
// Panics if l is not Novice, Adventurer or Master.
func (b *Builder) Level(l Level) *Builder {
	if _, ok := levelActions[l]; !ok {
		panic("tstack: unknown level")
	}
	b.opts.level = l
	return b
}

// Source sets the randomness used to pick piece shapes.
func (b *Builder) Source(src rand.Source) *Builder {
	b.opts.source = src
	return b
}

// Sequence sets the id counter the session draws from.
func (b *Builder) Sequence(seq *Sequence) *Builder {
	b.opts.sequence = seq
	return b
}

// Build creates the session and fills its queue to capacity.
//
// Filling stops at the first failed refill; that error is returned and no
// session is created.
func (b *Builder) Build() (*Session, error) {
	seq := b.opts.sequence
	if seq == nil {
		seq = new(Sequence)
	}
	return newSession(b.opts.level, NewFactory(b.opts.source), seq)
}
