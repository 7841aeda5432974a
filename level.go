// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tstack

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a player command a session can execute.
type Action uint8

// Actions in menu order.
const (
	ActionPlay Action = iota + 1
	ActionInsert
	ActionReserve
	ActionUseReserved
	ActionSwapOne
	ActionSwapGroup
)

func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionInsert:
		return "insert"
	case ActionReserve:
		return "reserve"
	case ActionUseReserved:
		return "use-reserved"
	case ActionSwapOne:
		return "swap-one"
	case ActionSwapGroup:
		return "swap-group"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Level selects the feature set of a session.
//
//	Novice     play (no replenish), insert
//	Adventurer play, reserve, use-reserved
//	Master     adventurer + swap-one, swap-group
type Level uint8

const (
	Novice Level = iota + 1
	Adventurer
	Master
)

var levelActions = map[Level][]Action{
	Novice:     {ActionPlay, ActionInsert},
	Adventurer: {ActionPlay, ActionReserve, ActionUseReserved},
	Master:     {ActionPlay, ActionReserve, ActionUseReserved, ActionSwapOne, ActionSwapGroup},
}

// Actions returns the actions offered at l, in menu order.
func (l Level) Actions() []Action {
	return slices.Clone(levelActions[l])
}

// Offers reports whether a is available at l.
func (l Level) Offers(a Action) bool {
	return slices.Contains(levelActions[l], a)
}

// Replenishes reports whether playing a piece refills the queue.
func (l Level) Replenishes() bool {
	return l != Novice
}

func (l Level) String() string {
	switch l {
	case Novice:
		return "novice"
	case Adventurer:
		return "adventurer"
	case Master:
		return "master"
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// ParseLevel converts a level name, case-insensitively.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "novice":
		return Novice, nil
	case "adventurer":
		return Adventurer, nil
	case "master":
		return Master, nil
	}
	return 0, fmt.Errorf("tstack: unknown level %q", name)
}
