package task

import "errors"

var (
	// ErrNilArgument is returned when a required reference or name is missing.
	ErrNilArgument = errors.New("task: required argument is missing")

	// ErrInvalidValue is returned when a value is outside its allowed range.
	ErrInvalidValue = errors.New("task: invalid value")

	// ErrInvalidTransition is returned when a runtime task is moved to a status
	// that cannot follow its current one.
	ErrInvalidTransition = errors.New("task: invalid status transition")
)
