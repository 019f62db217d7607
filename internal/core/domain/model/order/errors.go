package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for transition failures. Typed errors below wrap these so
// the API layer can classify failures with errors.Is and map each category to
// its own response code.
var (
	// ErrInvalidTransition means the requested target status is not reachable
	// from the order's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTransitionForbidden means the acting role or party lacks permission
	// for an otherwise legal transition.
	ErrTransitionForbidden = errors.New("transition forbidden")

	// ErrTerminalState means the order's current status permits no further
	// transitions at all.
	ErrTerminalState = errors.New("order is in a terminal state")
)

// InvalidTransitionError reports a requested edge that does not exist in the
// status graph. Transitions out of terminal states report TerminalStateError
// instead, so callers can tell "wrong move" from "game over".
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from Status, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenTransitionError reports a legal edge requested by a party that may
// not drive it: either the role is not in the edge's allow-list, or a seller
// or customer is acting on an order that does not belong to them.
type ForbiddenTransitionError struct {
	Role Role
	From Status
	To   Status
}

// NewForbiddenTransitionError creates a ForbiddenTransitionError for the given
// role and edge.
func NewForbiddenTransitionError(role Role, from Status, to Status) *ForbiddenTransitionError {
	return &ForbiddenTransitionError{Role: role, From: from, To: to}
}

func (e *ForbiddenTransitionError) Error() string {
	return fmt.Sprintf("%s: role %s may not apply %s -> %s", ErrTransitionForbidden, e.Role, e.From, e.To)
}

func (e *ForbiddenTransitionError) Unwrap() error {
	return ErrTransitionForbidden
}

// TerminalStateError reports a transition attempt against an order whose
// status is terminal.
type TerminalStateError struct {
	Status Status
}

// NewTerminalStateError creates a TerminalStateError for the given status.
func NewTerminalStateError(status Status) *TerminalStateError {
	return &TerminalStateError{Status: status}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTerminalState, e.Status)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}
