package engine

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

// Option configures a Dispatcher.
type Option func(*dispatcherOptions)

// ContextFactory builds the task.Context handed to an executable for one attempt.
type ContextFactory func(entry *Entry) *task.Context

type dispatcherOptions struct {
	pullInterval     time.Duration
	maxConcurrent    int
	executionTimeout time.Duration
	shutdownTimeout  time.Duration
	logger           *slog.Logger
	clock            func() time.Time
	newContext       ContextFactory
}

func defaultOptions() *dispatcherOptions {
	return &dispatcherOptions{
		pullInterval:     time.Second,
		maxConcurrent:    1,
		executionTimeout: 5 * time.Minute,
		shutdownTimeout:  30 * time.Second,
		logger:           slog.Default(),
		clock:            time.Now,
		newContext:       func(*Entry) *task.Context { return task.NewContext() },
	}
}

// WithPullInterval sets how often the dispatcher polls the store.
func WithPullInterval(interval time.Duration) Option {
	return func(o *dispatcherOptions) {
		if interval > 0 {
			o.pullInterval = interval
		}
	}
}

// WithMaxConcurrent sets how many attempts may run at once.
func WithMaxConcurrent(n int) Option {
	return func(o *dispatcherOptions) {
		if n > 0 {
			o.maxConcurrent = n
		}
	}
}

// WithExecutionTimeout bounds a single attempt. Zero disables the bound.
func WithExecutionTimeout(timeout time.Duration) Option {
	return func(o *dispatcherOptions) {
		if timeout >= 0 {
			o.executionTimeout = timeout
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight attempts on shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(o *dispatcherOptions) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *dispatcherOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the clock used for due checks and plan bookkeeping.
func WithClock(clock func() time.Time) Option {
	return func(o *dispatcherOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithContextFactory sets how each attempt's task.Context is built.
func WithContextFactory(factory ContextFactory) Option {
	return func(o *dispatcherOptions) {
		if factory != nil {
			o.newContext = factory
		}
	}
}
