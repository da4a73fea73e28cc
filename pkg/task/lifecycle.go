package task

import (
	"fmt"
	"slices"
	"sync"
)

// lifecycleTransitions lists the statuses reachable from each status.
// FINISHED is terminal. WAITING and INITIAL may finish directly when an
// attempt is rejected or canceled before it runs.
var lifecycleTransitions = map[Status][]Status{
	StatusInitial: {StatusWaiting, StatusFinished},
	StatusWaiting: {StatusRunning, StatusFinished},
	StatusRunning: {StatusFinished},
}

// lifecycle tracks the status of one execution attempt.
type lifecycle struct {
	mu      sync.RWMutex
	current Status
}

func (l *lifecycle) status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *lifecycle) canTransition(to Status) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(lifecycleTransitions[l.current], to)
}

func (l *lifecycle) transition(to Status) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !slices.Contains(lifecycleTransitions[l.current], to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.current, to)
	}
	l.current = to
	return nil
}

// finish moves to FINISHED from any status; it reports whether a move happened.
func (l *lifecycle) finish() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == StatusFinished {
		return false
	}
	l.current = StatusFinished
	return true
}
