package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TaskID records the dispatch entry id under the key "task_id".
func TaskID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("task_id", id)
}

// TaskType records the content type code under the key "task_type".
func TaskType(typ int) slog.Attr {
	return slog.Int("task_type", typ)
}

// Priority records a priority under the key "priority".
func Priority[P ~int](p P) slog.Attr {
	return slog.Int("priority", int(p))
}

// Result records an execution result name under the key "result".
func Result(r fmt.Stringer) slog.Attr {
	return slog.String("result", r.String())
}

// Status records a lifecycle status name under the key "status".
func Status(s fmt.Stringer) slog.Attr {
	return slog.String("status", s.String())
}

// Attempt records the attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Instant records a Unix millisecond instant as a time under key.
// Zero instants are logged as empty attributes.
func Instant(key string, ms int64) slog.Attr {
	if ms == 0 {
		return slog.Attr{}
	}
	return slog.Time(key, time.UnixMilli(ms))
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func WorkerID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("worker_id", id)
}
