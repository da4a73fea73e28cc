package engine

import "errors"

var (
	// ErrStoreNil is returned when a nil store is provided
	ErrStoreNil = errors.New("engine: store cannot be nil")

	// ErrTaskNil is returned when submitting a nil task
	ErrTaskNil = errors.New("engine: task cannot be nil")

	// ErrInvalidTaskType is returned when registering an executable for a non-positive type
	ErrInvalidTaskType = errors.New("engine: task type must be greater than zero")

	// ErrExecutableNil is returned when registering a nil executable
	ErrExecutableNil = errors.New("engine: executable cannot be nil")

	// ErrExecutableRegistered is returned when a type already has an executable
	ErrExecutableRegistered = errors.New("engine: executable already registered for task type")

	// ErrExecutableNotFound is returned when no executable is registered for a task type
	ErrExecutableNotFound = errors.New("engine: no executable registered for task type")

	// ErrNoExecutables is returned when starting a dispatcher without executables
	ErrNoExecutables = errors.New("engine: no executables registered")

	// ErrAlreadyStarted is returned when starting a running dispatcher
	ErrAlreadyStarted = errors.New("engine: dispatcher already started")

	// ErrNotStarted is returned when stopping a dispatcher that is not running
	ErrNotStarted = errors.New("engine: dispatcher not started")

	// ErrNoEntryDue is returned by Store.Claim when nothing is due
	ErrNoEntryDue = errors.New("engine: no entry due")

	// ErrEntryNotFound is returned when a store does not know an entry
	ErrEntryNotFound = errors.New("engine: entry not found")

	// ErrEntryExists is returned when pushing an entry whose id or task is already stored
	ErrEntryExists = errors.New("engine: entry already stored")

	// ErrEntryNotClaimed is returned when releasing or completing an entry that is not claimed
	ErrEntryNotClaimed = errors.New("engine: entry is not claimed")

	// ErrInvalidInstant is returned when rescheduling at a negative instant
	ErrInvalidInstant = errors.New("engine: instant must not be negative")

	// ErrNotFinished is reported when an executable returns without finishing the attempt
	ErrNotFinished = errors.New("engine: executable did not finish the attempt")

	// ErrInvalidResult is reported when an executable returns an unknown result
	ErrInvalidResult = errors.New("engine: executable returned an invalid result")

	// ErrExecutablePanic is reported when an executable panics
	ErrExecutablePanic = errors.New("engine: executable panicked")
)
