package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

// Entry is a task held by a Store together with its dispatch bookkeeping.
type Entry struct {
	ID          uuid.UUID
	Task        *task.Task
	Attempts    int
	LastResult  task.Result
	LastError   string
	SubmittedAt time.Time
}

// DeadLetter is an entry that was removed without running to completion.
type DeadLetter struct {
	Entry    Entry
	Result   task.Result
	Reason   string
	FailedAt time.Time
}

// Store holds entries between attempts.
//
// A claimed entry is invisible to Claim until it is released, completed or
// rejected. The dispatcher only mutates an entry's Plan while it holds the claim.
type Store interface {
	// Push adds a new entry.
	Push(ctx context.Context, entry *Entry) error

	// Claim returns the highest priority entry whose next instant is not after now.
	// It returns ErrNoEntryDue when nothing is due.
	Claim(ctx context.Context, now int64) (*Entry, error)

	// Release returns a claimed entry to the pending set.
	Release(ctx context.Context, id uuid.UUID) error

	// Complete removes a claimed entry.
	Complete(ctx context.Context, id uuid.UUID) error

	// Reject removes a claimed entry and records it as a dead letter.
	Reject(ctx context.Context, id uuid.UUID, result task.Result, reason string) error

	// Len returns the number of pending and claimed entries.
	Len(ctx context.Context) (int, error)
}
