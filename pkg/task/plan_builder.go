package task

import "time"

// PlanBuilder assembles a Plan with chainable setters.
//
// The builder owns a single Plan; Build returns that same instance every time.
// The first invalid value is kept and reported by Build.
type PlanBuilder struct {
	plan  *Plan
	clock func() time.Time
	err   error
}

// NewPlanBuilder starts a plan with normal priority, start = now and next = start.
func NewPlanBuilder(opts ...PlanOption) *PlanBuilder {
	options := applyPlanOptions(opts)
	return &PlanBuilder{
		plan:  newPlan(options.clock().UnixMilli()),
		clock: options.clock,
	}
}

func (b *PlanBuilder) now() int64 {
	return b.clock().UnixMilli()
}

func (b *PlanBuilder) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// Priority sets an absolute priority; out-of-range values fail the build.
func (b *PlanBuilder) Priority(p Priority) *PlanBuilder {
	b.fail(b.plan.SetPriority(p))
	return b
}

// PriorityNormalized sets the priority after clamping it into the valid range.
func (b *PlanBuilder) PriorityNormalized(p int) *PlanBuilder {
	b.plan.priority = NormalizePriority(p)
	return b
}

func (b *PlanBuilder) PriorityLowest() *PlanBuilder   { return b.Priority(PriorityLowest) }
func (b *PlanBuilder) PriorityVeryLow() *PlanBuilder  { return b.Priority(PriorityVeryLow) }
func (b *PlanBuilder) PriorityLow() *PlanBuilder      { return b.Priority(PriorityLow) }
func (b *PlanBuilder) PriorityNormal() *PlanBuilder   { return b.Priority(PriorityNormal) }
func (b *PlanBuilder) PriorityHigh() *PlanBuilder     { return b.Priority(PriorityHigh) }
func (b *PlanBuilder) PriorityVeryHigh() *PlanBuilder { return b.Priority(PriorityVeryHigh) }
func (b *PlanBuilder) PriorityHighest() *PlanBuilder  { return b.Priority(PriorityHighest) }

// StartAt sets the start instant (Unix ms) and resets next to it.
func (b *PlanBuilder) StartAt(start int64) *PlanBuilder {
	if err := b.plan.SetStart(start); err != nil {
		b.fail(err)
		return b
	}
	b.plan.next = start
	return b
}

func (b *PlanBuilder) StartAtTime(t time.Time) *PlanBuilder {
	return b.StartAt(t.UnixMilli())
}

func (b *PlanBuilder) StartNow() *PlanBuilder {
	return b.StartAt(b.now())
}

// StartAfter starts the plan d from now.
func (b *PlanBuilder) StartAfter(d time.Duration) *PlanBuilder {
	return b.StartAt(b.now() + d.Milliseconds())
}

func (b *PlanBuilder) StartAfterSeconds(n int) *PlanBuilder {
	return b.StartAfter(time.Duration(n) * time.Second)
}

func (b *PlanBuilder) StartAfterMinutes(n int) *PlanBuilder {
	return b.StartAfter(time.Duration(n) * time.Minute)
}

func (b *PlanBuilder) StartAfterHours(n int) *PlanBuilder {
	return b.StartAfter(time.Duration(n) * time.Hour)
}

// EnableSchedule attaches a fresh schedule policy and returns its builder.
func (b *PlanBuilder) EnableSchedule() *RepeatBuilder {
	policy := NewRepeatPolicy()
	b.plan.schedule = policy
	return &RepeatBuilder{parent: b, policy: policy}
}

// EnableRetry attaches a fresh retry policy and returns its builder.
func (b *PlanBuilder) EnableRetry() *RepeatBuilder {
	policy := NewRepeatPolicy()
	b.plan.retry = policy
	return &RepeatBuilder{parent: b, policy: policy}
}

// Build returns the plan under construction.
func (b *PlanBuilder) Build() (*Plan, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}

// MustBuild is like Build but panics on error.
func (b *PlanBuilder) MustBuild() *Plan {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// RepeatBuilder configures a RepeatPolicy attached to the plan of its parent builder.
// Errors are reported by the parent's Build.
type RepeatBuilder struct {
	parent *PlanBuilder
	policy *RepeatPolicy
}

// Max sets the total number of executions; it must be greater than 1.
func (r *RepeatBuilder) Max(n int) *RepeatBuilder {
	r.parent.fail(r.policy.SetMax(n))
	return r
}

func (r *RepeatBuilder) Executed(n int) *RepeatBuilder {
	r.parent.fail(r.policy.SetExecuted(n))
	return r
}

// Disabled attaches the policy switched off.
func (r *RepeatBuilder) Disabled() *RepeatBuilder {
	r.policy.SetEnabled(false)
	return r
}

func (r *RepeatBuilder) Interval(d time.Duration) *RepeatBuilder {
	r.parent.fail(r.policy.SetInterval(d.Milliseconds()))
	return r
}

func (r *RepeatBuilder) IntervalInMillis(n int64) *RepeatBuilder {
	r.parent.fail(r.policy.SetInterval(n))
	return r
}

func (r *RepeatBuilder) IntervalInSeconds(n int) *RepeatBuilder {
	return r.Interval(time.Duration(n) * time.Second)
}

func (r *RepeatBuilder) IntervalInMinutes(n int) *RepeatBuilder {
	return r.Interval(time.Duration(n) * time.Minute)
}

func (r *RepeatBuilder) IntervalInHours(n int) *RepeatBuilder {
	return r.Interval(time.Duration(n) * time.Hour)
}

// DeadlineAt sets an absolute deadline in Unix milliseconds.
func (r *RepeatBuilder) DeadlineAt(deadline int64) *RepeatBuilder {
	r.parent.fail(r.policy.SetDeadline(deadline))
	return r
}

func (r *RepeatBuilder) DeadlineAtTime(t time.Time) *RepeatBuilder {
	return r.DeadlineAt(t.UnixMilli())
}

// DeadlineAfter sets the deadline d from now.
func (r *RepeatBuilder) DeadlineAfter(d time.Duration) *RepeatBuilder {
	return r.DeadlineAt(r.parent.now() + d.Milliseconds())
}

func (r *RepeatBuilder) DeadlineAfterSeconds(n int) *RepeatBuilder {
	return r.DeadlineAfter(time.Duration(n) * time.Second)
}

func (r *RepeatBuilder) DeadlineAfterMinutes(n int) *RepeatBuilder {
	return r.DeadlineAfter(time.Duration(n) * time.Minute)
}

func (r *RepeatBuilder) DeadlineAfterHours(n int) *RepeatBuilder {
	return r.DeadlineAfter(time.Duration(n) * time.Hour)
}

// Policy returns the policy being configured.
func (r *RepeatBuilder) Policy() *RepeatPolicy {
	return r.policy
}

// Plan returns to the parent builder.
func (r *RepeatBuilder) Plan() *PlanBuilder {
	return r.parent
}

// Build builds the parent plan.
func (r *RepeatBuilder) Build() (*Plan, error) {
	return r.parent.Build()
}

// MustBuild is like Build but panics on error.
func (r *RepeatBuilder) MustBuild() *Plan {
	return r.parent.MustBuild()
}
