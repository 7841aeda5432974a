// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package console drives a session from a terminal menu.
//
// Digits pick menu entries in the order the session's level offers them,
// so at Novice "2" inserts a piece and at Adventurer and above "2"
// reserves one. "0", "q" and Esc exit.
package console

import (
	"fmt"

	"code.hybscloud.com/tstack"
	"code.hybscloud.com/tstack/internal/journal"
	"github.com/gdamore/tcell/v2"
)

// maxMessages is how many outcome lines stay on screen.
const maxMessages = 6

var labels = map[tstack.Action]string{
	tstack.ActionPlay:        "Play next piece",
	tstack.ActionInsert:      "Insert a piece",
	tstack.ActionReserve:     "Reserve next piece",
	tstack.ActionUseReserved: "Use reserved piece",
	tstack.ActionSwapOne:     "Swap next with top reserved",
	tstack.ActionSwapGroup:   "Swap reserved group",
}

var shapeColors = map[tstack.Shape]tcell.Color{
	tstack.ShapeI: tcell.ColorAqua,
	tstack.ShapeO: tcell.ColorYellow,
	tstack.ShapeT: tcell.ColorPurple,
	tstack.ShapeL: tcell.ColorOrange,
}

// Config holds optional controller settings.
type Config struct {
	// Journal receives every outcome. Nil disables journaling.
	Journal *journal.Writer

	// Color draws pieces in per-shape colors.
	Color bool
}

// Controller renders a session and maps keys to actions.
type Controller struct {
	screen   tcell.Screen
	session  *tstack.Session
	cfg      Config
	messages []string
	err      error
}

// New creates a controller. The screen must already be initialised.
func New(screen tcell.Screen, session *tstack.Session, cfg Config) *Controller {
	return &Controller{screen: screen, session: session, cfg: cfg}
}

// Run draws and handles events until the player exits.
// It returns the first journal error, if any.
func (c *Controller) Run() error {
	for {
		c.Draw()
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return c.err
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			if !c.HandleKey(ev) {
				return c.err
			}
		}
	}
}

// HandleKey applies one key press. It reports false when the loop should stop.
func (c *Controller) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	if r == '0' || r == 'q' || r == 'Q' {
		return false
	}
	if r < '1' || r > '9' {
		return true
	}

	actions := c.session.Level().Actions()
	idx := int(r - '1')
	if idx >= len(actions) {
		c.say(fmt.Sprintf("no menu entry %c", r))
		return true
	}
	return c.apply(actions[idx])
}

func (c *Controller) apply(a tstack.Action) bool {
	o, err := c.session.Execute(a)
	c.say(describe(o, err))

	if c.cfg.Journal != nil {
		if jerr := c.cfg.Journal.Record(o, err, c.session.Inverted()); jerr != nil {
			c.err = jerr
			return false
		}
	}
	return true
}

func describe(o tstack.Outcome, err error) string {
	if err != nil {
		return fmt.Sprintf("%s: %v", o.Action, err)
	}
	msg := o.Action.String() + ":"
	for _, t := range o.Transfers {
		msg += fmt.Sprintf(" %v %s>%s", t.Elem, t.From, t.To)
	}
	if o.Refill != nil {
		msg += fmt.Sprintf(" (refill: %v)", o.Refill)
	}
	return msg
}

func (c *Controller) say(msg string) {
	c.messages = append(c.messages, msg)
	if n := len(c.messages); n > maxMessages {
		c.messages = c.messages[n-maxMessages:]
	}
}

// Messages returns the outcome lines currently on screen, oldest first.
func (c *Controller) Messages() []string {
	return append([]string(nil), c.messages...)
}

// Draw renders the whole screen.
func (c *Controller) Draw() {
	c.screen.Clear()
	plain := tcell.StyleDefault
	bold := plain.Bold(true)

	y := 0
	c.text(0, y, bold, "tstack - level "+c.session.Level().String())
	y += 2

	x := c.text(0, y, plain, "Queue  ")
	for _, p := range c.session.Queue() {
		x = c.text(x, y, c.pieceStyle(p), p.String())
		x = c.text(x, y, plain, " ")
	}
	y++

	if c.session.Level().Offers(tstack.ActionReserve) {
		x = c.text(0, y, plain, "Stack  ")
		for _, p := range c.session.Reserved() {
			x = c.text(x, y, c.pieceStyle(p), p.String())
			x = c.text(x, y, plain, " ")
		}
		y++
	}
	if c.session.Level().Offers(tstack.ActionSwapGroup) && c.session.Inverted() {
		c.text(0, y, plain, "Group  inverted")
	}
	y += 2

	for i, a := range c.session.Level().Actions() {
		c.text(0, y, plain, fmt.Sprintf("%d  %s", i+1, labels[a]))
		y++
	}
	c.text(0, y, plain, "0  Exit")
	y += 2

	for _, m := range c.messages {
		c.text(0, y, plain, m)
		y++
	}
	c.screen.Show()
}

func (c *Controller) pieceStyle(p tstack.Piece) tcell.Style {
	if !c.cfg.Color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(shapeColors[p.Shape])
}

// text draws s at (x, y) and returns the column after it.
func (c *Controller) text(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
