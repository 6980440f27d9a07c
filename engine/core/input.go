package core

import "strings"

// Action is a logical control the player can hold
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionFire
	ActionMax
)

var actionNames = [ActionMax]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionFire:      "fire",
}

func (a Action) String() string {
	if a < ActionMax {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction maps a binding name back to its action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(a), true
		}
	}
	return 0, false
}

// Input is the per-tick snapshot of held actions
type Input uint8

// With returns a copy of in with action a held.
func (in Input) With(a Action) Input { return in | 1<<a }

// Held reports whether action a is held this tick.
func (in Input) Held(a Action) bool { return in&(1<<a) != 0 }

// InputOf builds a snapshot from the given held actions.
func InputOf(actions ...Action) Input {
	var in Input
	for _, a := range actions {
		in = in.With(a)
	}
	return in
}

func (in Input) String() string {
	var parts []string
	for a := Action(0); a < ActionMax; a++ {
		if in.Held(a) {
			parts = append(parts, a.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
