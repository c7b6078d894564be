package rulesfile

import "errors"

// Predefined errors for the rulesfile package.
var (
	// ErrInvalidFile indicates the document is not a valid rules file.
	ErrInvalidFile = errors.New("invalid transition rules file")

	// ErrFieldRequired indicates the document omits the tracked field name.
	ErrFieldRequired = errors.New("rules file must name the tracked field")

	// ErrStatesRequired indicates the document declares no states.
	ErrStatesRequired = errors.New("rules file must declare at least one state")
)
