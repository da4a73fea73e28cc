package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskengine/pkg/logger"
	"github.com/dmitrymomot/taskengine/pkg/task"
)

// Dispatcher claims due entries from a Store and runs them with the
// Executable registered for their content type.
type Dispatcher struct {
	store       Store
	executables map[int]task.Executable
	id          uuid.UUID
	sem         chan struct{}
	mu          sync.RWMutex

	pullInterval     time.Duration
	executionTimeout time.Duration
	shutdownTimeout  time.Duration
	logger           *slog.Logger
	clock            func() time.Time
	newContext       ContextFactory

	current *session
}

// session is one Start..Shutdown cycle. The polling loop and every drain
// goroutine of the cycle are counted in wg.
type session struct {
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopMu   sync.Mutex // guards stopping together with wg.Add
	stopping bool
}

// add registers one more goroutine unless the session is stopping.
func (s *session) add() bool {
	s.stopMu.Lock()
	defer s.stopMu.Unlock()
	if s.stopping {
		return false
	}
	s.wg.Add(1)
	return true
}

func (s *session) stop() {
	s.stopMu.Lock()
	s.stopping = true
	s.stopMu.Unlock()
	s.cancel()
}

// NewDispatcher creates a dispatcher reading from store.
func NewDispatcher(store Store, opts ...Option) (*Dispatcher, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Dispatcher{
		store:            store,
		executables:      make(map[int]task.Executable),
		id:               uuid.New(),
		sem:              make(chan struct{}, options.maxConcurrent),
		pullInterval:     options.pullInterval,
		executionTimeout: options.executionTimeout,
		shutdownTimeout:  options.shutdownTimeout,
		logger:           options.logger.With(logger.Component("engine")),
		clock:            options.clock,
		newContext:       options.newContext,
	}, nil
}

// ID returns the dispatcher's identifier, used in log records.
func (d *Dispatcher) ID() uuid.UUID { return d.id }

// Register binds exec to a content type. Each type has at most one executable.
func (d *Dispatcher) Register(typ int, exec task.Executable) error {
	if typ <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTaskType, typ)
	}
	if exec == nil {
		return ErrExecutableNil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.executables[typ]; exists {
		return fmt.Errorf("%w: %d", ErrExecutableRegistered, typ)
	}
	d.executables[typ] = exec
	return nil
}

func (d *Dispatcher) executable(typ int) (task.Executable, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	exec, ok := d.executables[typ]
	return exec, ok
}

// Submit stores t for dispatch and returns the id of its entry.
// The task becomes eligible once its plan's next instant is reached.
func (d *Dispatcher) Submit(ctx context.Context, t *task.Task) (uuid.UUID, error) {
	if t == nil {
		return uuid.Nil, ErrTaskNil
	}

	entry := &Entry{
		ID:          uuid.New(),
		Task:        t,
		SubmittedAt: d.clock(),
	}
	if err := d.store.Push(ctx, entry); err != nil {
		return uuid.Nil, fmt.Errorf("failed to submit task: %w", err)
	}

	d.logger.DebugContext(ctx, "task submitted",
		logger.TaskID(entry.ID),
		logger.TaskType(t.Content().Type()),
		logger.Priority(t.Plan().Priority()),
		logger.Instant("next", t.Plan().Next()))

	return entry.ID, nil
}

// Start begins polling the store in the background.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.current != nil {
		d.mu.Unlock()
		return ErrAlreadyStarted
	}
	if len(d.executables) == 0 {
		d.mu.Unlock()
		return ErrNoExecutables
	}

	runCtx, cancel := context.WithCancel(ctx)
	s := &session{cancel: cancel}
	s.wg.Add(1)
	d.current = s
	d.mu.Unlock()

	go func() {
		defer s.wg.Done()
		d.run(runCtx, s)
	}()

	d.logger.Info("dispatcher started",
		logger.WorkerID(d.id),
		slog.Int("max_concurrent", cap(d.sem)),
		slog.Duration("pull_interval", d.pullInterval))

	return nil
}

// Stop cancels polling and waits for in-flight attempts to finish.
func (d *Dispatcher) Stop() error {
	return d.Shutdown(context.Background())
}

// Shutdown cancels polling and waits for the polling loop and in-flight
// attempts until ctx is done. The dispatcher may be started again even when
// the wait timed out; attempts left running keep their concurrency slots.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	s := d.current
	if s == nil {
		d.mu.Unlock()
		return ErrNotStarted
	}
	d.current = nil
	d.mu.Unlock()

	s.stop()

	d.logger.Info("dispatcher stopping, waiting for in-flight tasks", logger.WorkerID(d.id))

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.logger.Warn("dispatcher shutdown timed out", logger.WorkerID(d.id), logger.Error(ctx.Err()))
		return ctx.Err()
	}

	d.logger.Info("dispatcher stopped", logger.WorkerID(d.id))
	return nil
}

// Run starts the dispatcher and returns a function suitable for errgroup.
// When ctx is done the dispatcher waits up to the shutdown timeout for
// in-flight attempts.
func (d *Dispatcher) Run(ctx context.Context) func() error {
	return func() error {
		if err := d.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.shutdownTimeout)
		defer cancel()
		return d.Shutdown(shutdownCtx)
	}
}

func (d *Dispatcher) run(ctx context.Context, s *session) {
	ticker := time.NewTicker(d.pullInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fillSlots(ctx, s)
		}
	}
}

// fillSlots starts a drain loop in every free slot.
func (d *Dispatcher) fillSlots(ctx context.Context, s *session) {
	for {
		select {
		case d.sem <- struct{}{}:
		default:
			return
		}

		if !s.add() {
			<-d.sem
			return
		}

		go func() {
			defer s.wg.Done()
			defer func() { <-d.sem }()
			d.drain(ctx)
		}()
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for ctx.Err() == nil {
		processed, err := d.Tick(ctx)
		if err != nil && !errors.Is(err, ErrExecutableNotFound) {
			d.logger.Error("failed to dispatch task", logger.WorkerID(d.id), logger.Error(err))
		}
		if !processed {
			return
		}
	}
}

// Tick claims one due entry and runs it synchronously. It reports whether an
// entry was claimed.
func (d *Dispatcher) Tick(ctx context.Context) (bool, error) {
	entry, err := d.store.Claim(ctx, d.clock().UnixMilli())
	if err != nil {
		if errors.Is(err, ErrNoEntryDue) {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim task: %w", err)
	}

	return true, d.process(WithEntryID(context.WithoutCancel(ctx), entry.ID), entry)
}

func (d *Dispatcher) process(ctx context.Context, entry *Entry) error {
	start := d.clock()
	typ := entry.Task.Content().Type()
	log := d.logger.With(
		logger.WorkerID(d.id),
		logger.TaskID(entry.ID),
		logger.TaskType(typ))

	exec, ok := d.executable(typ)
	if !ok {
		entry.LastResult = task.ResultRejected
		entry.LastError = fmt.Sprintf("no executable registered for task type %d", typ)
		log.Error("no executable registered for task type")
		if err := d.store.Reject(ctx, entry.ID, task.ResultRejected, entry.LastError); err != nil {
			return fmt.Errorf("failed to reject task %s: %w", entry.ID, err)
		}
		return fmt.Errorf("%w: %d", ErrExecutableNotFound, typ)
	}

	tc := d.newContext(entry)
	if tc == nil {
		tc = task.NewContext()
	}
	rt, err := task.NewRuntimeTask(entry.Task, tc)
	if err != nil {
		return errors.Join(err, d.store.Release(ctx, entry.ID))
	}
	_ = rt.Transition(task.StatusWaiting)
	_ = rt.Transition(task.StatusRunning)

	result, invokeErr := d.invoke(ctx, exec, rt)
	duration := d.clock().Sub(start)

	entry.Attempts++
	entry.LastResult = result
	entry.LastError = ""
	if invokeErr != nil {
		entry.LastError = invokeErr.Error()
		log.Warn("task attempt normalized to failure", logger.Error(invokeErr))
	}

	decision, rescheduleErr := Reschedule(entry.Task.Plan(), result, d.clock().UnixMilli())
	if rescheduleErr != nil {
		entry.LastError = errors.Join(invokeErr, rescheduleErr).Error()
		log.Error("failed to reschedule task", logger.Error(rescheduleErr))
	}

	log = log.With(
		logger.Result(result),
		logger.Attempt(entry.Attempts),
		logger.Duration(duration),
		slog.String("decision", decision.String()))

	switch {
	case decision.Requeue():
		if err := d.store.Release(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to requeue task %s: %w", entry.ID, err)
		}
		log.Info("task requeued", logger.Instant("next", entry.Task.Plan().Next()))

	case rescheduleErr != nil || result == task.ResultFailure || result == task.ResultRejected:
		reason := entry.LastError
		if reason == "" {
			reason = "task ended with " + result.String()
		}
		if err := d.store.Reject(ctx, entry.ID, result, reason); err != nil {
			return fmt.Errorf("failed to reject task %s: %w", entry.ID, err)
		}
		log.Warn("task moved to dead letters")

	default:
		if err := d.store.Complete(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to complete task %s: %w", entry.ID, err)
		}
		log.Info("task completed")
	}

	return nil
}

func (d *Dispatcher) invoke(ctx context.Context, exec task.Executable, rt *task.RuntimeTask) (task.Result, error) {
	if d.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.executionTimeout)
		defer cancel()
	}
	return Invoke(ctx, exec, rt)
}
