package task

import "fmt"

// RuntimeTask pairs a Task with the Context of one dispatch. A new RuntimeTask
// is created for every execution attempt and starts in StatusInitial.
type RuntimeTask struct {
	task    *Task
	context *Context
	life    lifecycle
}

// NewRuntimeTask wraps t and c for one execution attempt. Both are required.
func NewRuntimeTask(t *Task, c *Context) (*RuntimeTask, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: task should not be nil", ErrNilArgument)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: task context should not be nil", ErrNilArgument)
	}
	return &RuntimeTask{task: t, context: c}, nil
}

// Task returns the wrapped task.
func (rt *RuntimeTask) Task() *Task { return rt.task }

// Context returns the attempt's context.
func (rt *RuntimeTask) Context() *Context { return rt.context }

// Status returns the current lifecycle status of the attempt.
func (rt *RuntimeTask) Status() Status {
	return rt.life.status()
}

// CanTransition reports whether the attempt may move to the given status.
func (rt *RuntimeTask) CanTransition(to Status) bool {
	return rt.life.canTransition(to)
}

// Transition moves the attempt to the given status. Moves that skip backwards
// or leave FINISHED fail with ErrInvalidTransition.
func (rt *RuntimeTask) Transition(to Status) error {
	return rt.life.transition(to)
}

// Finish marks the attempt FINISHED. Executables call it before returning a Result.
func (rt *RuntimeTask) Finish() error {
	return rt.life.transition(StatusFinished)
}

// ForceFinish marks the attempt FINISHED whatever its current status and reports
// whether the status had to be changed. It is meant for engines normalizing
// attempts that did not finish themselves.
func (rt *RuntimeTask) ForceFinish() bool {
	return rt.life.finish()
}
