package task

import "fmt"

// Task pairs what to do (Content) with when and how often to do it (Plan).
// A Task is never mutated; re-execution state lives in its Plan.
type Task struct {
	content *Content
	plan    *Plan
}

// New creates a task. A nil plan is replaced by DefaultPlan.
func New(content *Content, plan *Plan) (*Task, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: task content should not be nil", ErrNilArgument)
	}
	if plan == nil {
		plan = DefaultPlan()
	}
	return &Task{content: content, plan: plan}, nil
}

func (t *Task) Content() *Content { return t.content }
func (t *Task) Plan() *Plan       { return t.plan }

func (t *Task) String() string {
	return fmt.Sprintf("Task[%s,%s]", t.content, t.plan)
}
