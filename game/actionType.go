package game

import (
	"fmt"
	"strings"
)

// Action represents one discrete input Little Mac can perform on the next step.
type Action int

const (
	NoAction Action = iota
	PunchLeft
	PunchRight
	UpperLeft
	UpperRight
	DodgeLeft
	DodgeRight
	Block
)

var actionNames = [...]string{
	NoAction:   "NONE",
	PunchLeft:  "PUNCH_LEFT",
	PunchRight: "PUNCH_RIGHT",
	UpperLeft:  "UPPER_LEFT",
	UpperRight: "UPPER_RIGHT",
	DodgeLeft:  "DODGE_LEFT",
	DodgeRight: "DODGE_RIGHT",
	Block:      "BLOCK",
}

// Action groups in wire order
var (
	AllActions = []Action{NoAction, PunchLeft, PunchRight, UpperLeft, UpperRight, DodgeLeft, DodgeRight, Block}
	Jabs       = []Action{PunchLeft, PunchRight}
	Uppercuts  = []Action{UpperLeft, UpperRight}
	Punches    = []Action{PunchLeft, PunchRight, UpperLeft, UpperRight}
	Defenses   = []Action{DodgeLeft, DodgeRight, Block}
)

// String returns the uppercase token sent back to the game-state producer.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction converts a wire token back into an Action.
func ParseAction(token string) (Action, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	for i, name := range actionNames {
		if name == token {
			return Action(i), nil
		}
	}
	return NoAction, fmt.Errorf("%w: %q", ErrUnknownAction, token)
}

func (a Action) IsJab() bool {
	return a == PunchLeft || a == PunchRight
}

func (a Action) IsUppercut() bool {
	return a == UpperLeft || a == UpperRight
}

func (a Action) IsPunch() bool {
	return a.IsJab() || a.IsUppercut()
}

func (a Action) IsDefense() bool {
	return a == DodgeLeft || a == DodgeRight || a == Block
}
