package pipeline

import "fmt"

// State is a stage of a single run.
type State string

const (
	StateStart      State = "START"
	StateFetching   State = "FETCHING"
	StateValidating State = "VALIDATING"
	StateSucceeded  State = "SUCCEEDED"
	StateFailed     State = "FAILED"
)

// transitions lists the allowed targets per state. Terminal states have none.
var transitions = map[State][]State{
	StateStart:      {StateFetching},
	StateFetching:   {StateValidating, StateFailed},
	StateValidating: {StateSucceeded, StateFailed},
}

// CanTransition reports whether a run may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s State) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// run tracks the state of one ProcessUsers call.
type run struct {
	current   State
	observers []StateObserver
}

func (r *run) to(next State) error {
	if !CanTransition(r.current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.current, next)
	}
	prev := r.current
	r.current = next
	for _, obs := range r.observers {
		obs(prev, next)
	}
	return nil
}
