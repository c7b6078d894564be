package statekit

import "errors"

// Predefined errors for the statekit package.
var (
	// ErrNoField indicates that no tracked field name was provided to New.
	ErrNoField = errors.New("tracked field name is required")

	// ErrNoStates indicates that the declared state list is empty.
	ErrNoStates = errors.New("at least one state must be declared")

	// ErrInvalidRule indicates that a transition rule is malformed.
	ErrInvalidRule = errors.New("invalid transition rule")

	// ErrGuardNotResolved indicates that a rule references a named guard the
	// entity cannot resolve. This is a configuration error: the transition is
	// neither permitted nor silently rejected.
	ErrGuardNotResolved = errors.New("named guard could not be resolved on entity")

	// ErrUnknownState indicates that a fire request named a state outside the
	// declared state list.
	ErrUnknownState = errors.New("unknown state")
)
