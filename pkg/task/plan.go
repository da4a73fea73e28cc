package task

import (
	"fmt"
	"time"
)

// Plan describes when a task runs: its priority, start instant, the next and last
// execution instants, and optional schedule and retry policies.
//
// The schedule policy governs normal re-execution; the retry policy governs
// re-execution after a FAILURE. Both may be present.
type Plan struct {
	priority Priority
	start    int64
	next     int64
	last     int64
	schedule *RepeatPolicy
	retry    *RepeatPolicy
}

// PlanOption configures plan construction.
type PlanOption func(*planOptions)

type planOptions struct {
	clock func() time.Time
}

// WithClock sets the time source used for "now" defaults and relative instants.
func WithClock(clock func() time.Time) PlanOption {
	return func(o *planOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func applyPlanOptions(opts []PlanOption) *planOptions {
	options := &planOptions{clock: time.Now}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// NewPlan creates a plan with normal priority starting now.
func NewPlan(opts ...PlanOption) *Plan {
	return newPlan(applyPlanOptions(opts).clock().UnixMilli())
}

func newPlan(now int64) *Plan {
	return &Plan{
		priority: PriorityDefault,
		start:    now,
		next:     now,
	}
}

// DefaultPlan returns a plan with normal priority starting now and no repetition.
func DefaultPlan() *Plan {
	return NewPlan()
}

func (p *Plan) Priority() Priority { return p.priority }

// Start returns the start instant in Unix milliseconds.
func (p *Plan) Start() int64 { return p.start }

// Next returns the next trigger instant in Unix milliseconds, 0 if unset.
func (p *Plan) Next() int64 { return p.next }

// Last returns the last execution instant in Unix milliseconds, 0 if never executed.
func (p *Plan) Last() int64 { return p.last }

// Schedule returns the schedule policy or nil.
func (p *Plan) Schedule() *RepeatPolicy { return p.schedule }

// Retry returns the retry policy or nil.
func (p *Plan) Retry() *RepeatPolicy { return p.retry }

// SetPriority sets the priority, rejecting values outside [-128, 127].
// Use NormalizePriority to clamp instead.
func (p *Plan) SetPriority(priority Priority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: invalid task priority=%d", ErrInvalidValue, int(priority))
	}
	p.priority = priority
	return nil
}

func (p *Plan) SetStart(start int64) error {
	if err := checkInstant("start", start); err != nil {
		return err
	}
	p.start = start
	return nil
}

func (p *Plan) SetNext(next int64) error {
	if err := checkInstant("next", next); err != nil {
		return err
	}
	p.next = next
	return nil
}

func (p *Plan) SetLast(last int64) error {
	if err := checkInstant("last", last); err != nil {
		return err
	}
	p.last = last
	return nil
}

// SetSchedule attaches the schedule policy; nil detaches it.
func (p *Plan) SetSchedule(schedule *RepeatPolicy) {
	p.schedule = schedule
}

// SetRetry attaches the retry policy; nil detaches it.
func (p *Plan) SetRetry(retry *RepeatPolicy) {
	p.retry = retry
}

// Due reports whether the plan's next trigger instant has been reached.
func (p *Plan) Due(now int64) bool {
	return p.next <= now
}

func (p *Plan) String() string {
	return fmt.Sprintf("TaskPlan[priority=%d,start=%d,next=%d,last=%d,schedule=%s,retry=%s]",
		int(p.priority), p.start, p.next, p.last, policyString(p.schedule), policyString(p.retry))
}

func policyString(r *RepeatPolicy) string {
	if r == nil {
		return "none"
	}
	return r.String()
}

// 0 is accepted and means "unset".
func checkInstant(name string, v int64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s time should not be negative: %s=%d", ErrInvalidValue, name, name, v)
	}
	return nil
}
