package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskengine/pkg/logger"
)

type entryIDKey struct{}

// WithEntryID returns a copy of ctx carrying the entry id.
// The dispatcher sets it on the context of every attempt.
func WithEntryID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, entryIDKey{}, id)
}

// EntryIDFromContext returns the entry id of the attempt running under ctx.
func EntryIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(entryIDKey{}).(uuid.UUID)
	return id, ok
}

// LogExtractor adds the entry id as task_id to records logged with an
// attempt's context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := EntryIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.TaskID(id), true
	}
}
