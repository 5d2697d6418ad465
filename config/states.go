package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// StateID identifies the launcher screen that is currently active
type StateID int

const (
	StateMain StateID = iota
	StateSP
	StateHost
	StateJoin
	StateOptions
	StateQuit
	StateCount // Must be last - used for iteration
)

// ErrUnknownState is returned by ParseState for names that match no state
var ErrUnknownState = errors.New("unknown state")

// ErrNotScreenState is returned by ParseScreenState for QUIT, which only
// the platform queue handles
var ErrNotScreenState = errors.New("not a screen state")

var stateNames = [StateCount]string{
	StateMain:    "MAIN",
	StateSP:      "SP",
	StateHost:    "HOST",
	StateJoin:    "JOIN",
	StateOptions: "OPTIONS",
	StateQuit:    "QUIT",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return fmt.Sprintf("StateID(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState resolves a state name case-insensitively. On failure the error
// names the closest valid state when the typo is small enough.
func ParseState(name string) (StateID, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for id, n := range stateNames {
		if n == upper {
			return StateID(id), nil
		}
	}

	if suggestion, ok := nearestStateName(upper); ok {
		return StateMain, fmt.Errorf("%w %q, did you mean %s?", ErrUnknownState, name, suggestion)
	}
	return StateMain, fmt.Errorf("%w %q", ErrUnknownState, name)
}

// IsScreen reports whether the dispatcher may hold s as its current state
func (s StateID) IsScreen() bool {
	return s >= StateMain && s < StateQuit
}

// ParseScreenState is ParseState restricted to states the dispatcher can
// move to.
func ParseScreenState(name string) (StateID, error) {
	id, err := ParseState(name)
	if err != nil {
		return id, err
	}
	if !id.IsScreen() {
		return StateMain, fmt.Errorf("%w: %s", ErrNotScreenState, id)
	}
	return id, nil
}

func nearestStateName(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, cand := range stateNames {
		dist := levenshtein.ComputeDistance(name, cand)
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}

	// Allow roughly one edit per three characters
	limit := len(best)/3 + 1
	if bestDist > limit {
		return "", false
	}
	return best, true
}
