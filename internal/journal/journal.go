// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package journal records session outcomes as JSON lines.
//
// Each line is one action:
//
//	{"seq":1,"action":"reserve","ok":true,"error":"","transfers":[...],"inverted":false}
//
// A journal can be read back with [Read] to replay or audit a game.
package journal

import (
	"bufio"
	"fmt"
	"io"

	"code.hybscloud.com/tstack"
	"github.com/sugawarayuuta/sonnet"
)

// Move is one piece changing container.
type Move struct {
	ID    uint64 `json:"id"`
	Shape string `json:"shape"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Entry is one journal line.
type Entry struct {
	Seq       uint64 `json:"seq"`
	Action    string `json:"action"`
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	Transfers []Move `json:"transfers"`
	Refill    string `json:"refill,omitempty"`
	Inverted  bool   `json:"inverted"`
}

// NewEntry converts an outcome into a journal entry.
// inverted is the session's inversion flag after the action.
func NewEntry(seq uint64, o tstack.Outcome, err error, inverted bool) Entry {
	e := Entry{
		Seq:       seq,
		Action:    o.Action.String(),
		OK:        err == nil,
		Transfers: make([]Move, 0, len(o.Transfers)),
		Inverted:  inverted,
	}
	if err != nil {
		e.Error = err.Error()
	}
	if o.Refill != nil {
		e.Refill = o.Refill.Error()
	}
	for _, t := range o.Transfers {
		e.Transfers = append(e.Transfers, Move{
			ID:    t.Elem.ID,
			Shape: t.Elem.Shape.String(),
			From:  t.From.String(),
			To:    t.To.String(),
		})
	}
	return e
}

// Writer appends entries to an underlying stream.
// It is not safe for concurrent use.
type Writer struct {
	w   io.Writer
	seq uint64
}

// NewWriter returns a Writer that numbers entries from 1.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Record writes one outcome. Failed actions are recorded too.
func (j *Writer) Record(o tstack.Outcome, err error, inverted bool) error {
	j.seq++
	line, merr := sonnet.Marshal(NewEntry(j.seq, o, err, inverted))
	if merr != nil {
		return fmt.Errorf("journal: encode entry %d: %w", j.seq, merr)
	}
	line = append(line, '\n')
	if _, werr := j.w.Write(line); werr != nil {
		return fmt.Errorf("journal: write entry %d: %w", j.seq, werr)
	}
	return nil
}

// Len returns the number of entries recorded so far.
func (j *Writer) Len() uint64 { return j.seq }

// Read decodes every entry in r. Blank lines are skipped.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		var e Entry
		if err := sonnet.Unmarshal(b, &e); err != nil {
			return entries, fmt.Errorf("journal: line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, fmt.Errorf("journal: %w", err)
	}
	return entries, nil
}
