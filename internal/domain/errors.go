package domain

import "errors"

var (
	// ErrValidation indicates malformed input: an empty step list,
	// an out-of-range duration, or a missing required field.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced session or step does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition indicates a state-machine rule was violated,
	// e.g. finishing a step that is not in progress.
	ErrInvalidTransition = errors.New("invalid transition")
)
