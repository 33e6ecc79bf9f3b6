package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition indicates an attempt to move an order to a state the
	// transition table does not permit from its current state.
	ErrInvalidTransition = errors.New("invalid order transition")

	// ErrTerminalState indicates a document arrived for an order already in a
	// terminal state.
	ErrTerminalState = errors.New("order is in a terminal state")
)

// InvalidTransitionError names the current state, the attempted state, and the
// document that triggered the attempt. The order is left unchanged.
type InvalidTransitionError struct {
	From        Status
	To          Status
	DocumentRef string
}

func (e *InvalidTransitionError) Error() string {
	if e.DocumentRef != "" {
		return fmt.Sprintf("%s: %s to %s triggered by %s",
			ErrInvalidTransition, e.From, e.To, e.DocumentRef)
	}
	return fmt.Sprintf("%s: %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateError reports a document submitted against a delivered or
// cancelled order.
type TerminalStateError struct {
	State       Status
	DocumentRef string
}

func (e *TerminalStateError) Error() string {
	if e.DocumentRef != "" {
		return fmt.Sprintf("%s: %s rejects %s", ErrTerminalState, e.State, e.DocumentRef)
	}
	return fmt.Sprintf("%s: %s", ErrTerminalState, e.State)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}
