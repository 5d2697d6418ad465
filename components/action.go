package components

import cfg "github.com/automoto/gohta/config"

// ActionKind tags what a button does when pressed
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionTransition
	ActionCustomEvent
	ActionQuit
)

// Action is a command bound to a button. Only the fields for its Kind are read.
type Action struct {
	Kind    ActionKind
	Target  cfg.StateID       // ActionTransition
	Event   string            // ActionCustomEvent
	Payload map[string]string // ActionCustomEvent
}

// TransitionTo requests a dispatcher transition to target
func TransitionTo(target cfg.StateID) Action {
	return Action{Kind: ActionTransition, Target: target}
}

// PostEvent publishes a named custom event that a subscriber later
// turns into a transition
func PostEvent(name string, payload map[string]string) Action {
	return Action{Kind: ActionCustomEvent, Event: name, Payload: payload}
}

// Quit posts QUIT straight to the platform queue, skipping the dispatcher
func Quit() Action {
	return Action{Kind: ActionQuit}
}
