package task

import "fmt"

// Status is the lifecycle stage of a task attempt, independent of its Result.
// The numeric codes are part of the wire format and must not change.
type Status int

const (
	StatusInitial  Status = 0
	StatusWaiting  Status = 1
	StatusRunning  Status = 2
	StatusFinished Status = 3
)

var statusNames = [...]string{
	StatusInitial:  "INITIAL",
	StatusWaiting:  "WAITING",
	StatusRunning:  "RUNNING",
	StatusFinished: "FINISHED",
}

// Code returns the stable numeric code of the status.
func (s Status) Code() int {
	return int(s)
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= StatusInitial && s <= StatusFinished
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}
