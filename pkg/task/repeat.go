package task

import (
	"fmt"
	"math"
)

// RepeatPolicy bounds how many times, how often and until when a task may run again.
//
// A policy never mutates itself; the owning engine records executions with
// MarkExecuted between attempts.
type RepeatPolicy struct {
	enabled  bool
	max      int
	executed int
	interval int64
	deadline int64
}

// NewRepeatPolicy returns an enabled policy with max=1 (no repetition),
// no interval and no deadline.
func NewRepeatPolicy() *RepeatPolicy {
	return &RepeatPolicy{enabled: true, max: 1}
}

func (r *RepeatPolicy) Enabled() bool { return r.enabled }

// Max returns the total number of executions allowed. 1 means no repetition.
func (r *RepeatPolicy) Max() int { return r.max }

func (r *RepeatPolicy) Executed() int { return r.executed }

// Interval returns the pause between executions in milliseconds.
func (r *RepeatPolicy) Interval() int64 { return r.interval }

// Deadline returns the last instant (Unix ms) a repetition may start at, 0 if none.
func (r *RepeatPolicy) Deadline() int64 { return r.deadline }

func (r *RepeatPolicy) SetEnabled(enabled bool) {
	r.enabled = enabled
}

// SetMax sets the total number of executions. It must be greater than 1;
// leave the default in place to express "no repetition".
func (r *RepeatPolicy) SetMax(n int) error {
	if n <= 1 {
		return fmt.Errorf("%w: max execute times should be greater than 1: max=%d", ErrInvalidValue, n)
	}
	r.max = n
	return nil
}

func (r *RepeatPolicy) SetExecuted(executed int) error {
	if executed < 0 {
		return fmt.Errorf("%w: executed times should not be negative: executed=%d", ErrInvalidValue, executed)
	}
	r.executed = executed
	return nil
}

// SetInterval sets the interval in milliseconds; 0 means run again immediately.
func (r *RepeatPolicy) SetInterval(interval int64) error {
	if interval < 0 {
		return fmt.Errorf("%w: interval should not be negative: interval=%d", ErrInvalidValue, interval)
	}
	r.interval = interval
	return nil
}

// SetDeadline sets the deadline as Unix milliseconds; 0 means no deadline.
func (r *RepeatPolicy) SetDeadline(deadline int64) error {
	if deadline < 0 {
		return fmt.Errorf("%w: deadline should not be negative: deadline=%d", ErrInvalidValue, deadline)
	}
	r.deadline = deadline
	return nil
}

// MarkExecuted records one more execution.
func (r *RepeatPolicy) MarkExecuted() {
	r.executed++
}

// NextRun returns the instant the next execution would start at.
// The result saturates at math.MaxInt64.
func (r *RepeatPolicy) NextRun(now int64) int64 {
	if r.interval <= 0 {
		return now
	}
	if r.interval > math.MaxInt64-now {
		return math.MaxInt64
	}
	return now + r.interval
}

// NeedsAnotherRun reports whether the task is eligible to run again at now.
//
// A disabled policy never repeats. Count exhaustion wins over the deadline:
// with max <= 1 or executed >= max the answer is false whatever the deadline.
// Without a deadline the answer is true; otherwise the next run instant
// (now + interval) must not be after the deadline.
func (r *RepeatPolicy) NeedsAnotherRun(now int64) bool {
	if !r.enabled {
		return false
	}

	if r.max <= 1 || r.executed >= r.max {
		return false
	}

	if r.deadline <= 0 {
		return true
	}

	// now + interval <= deadline, without the sum
	return r.interval <= r.deadline-now
}

// Clone returns an independent copy of the policy.
func (r *RepeatPolicy) Clone() *RepeatPolicy {
	c := *r
	return &c
}

func (r *RepeatPolicy) String() string {
	return fmt.Sprintf("RepeatPolicy[enabled=%t,max=%d,executed=%d,interval=%d,deadline=%d]",
		r.enabled, r.max, r.executed, r.interval, r.deadline)
}
