package engine

import (
	"fmt"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

// Decision tells the dispatcher what to do with a task after an attempt.
type Decision int

const (
	// DecisionDone removes the task.
	DecisionDone Decision = iota
	// DecisionRetry re-enqueues the task after a failure.
	DecisionRetry
	// DecisionRepeat re-enqueues the task for its next scheduled run.
	DecisionRepeat
)

func (d Decision) String() string {
	switch d {
	case DecisionDone:
		return "done"
	case DecisionRetry:
		return "retry"
	case DecisionRepeat:
		return "repeat"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// Requeue reports whether the task goes back to the store.
func (d Decision) Requeue() bool {
	return d == DecisionRetry || d == DecisionRepeat
}

// Reschedule records an attempt that ended with result at now on plan and
// decides whether the task runs again.
//
// A FAILURE counts against the retry policy first; when the retry policy is
// absent or exhausted, the failed attempt counts as a scheduled run.
// SUCCESS counts against the schedule policy. A repeat resets the retry count
// so every scheduled run gets the full retry budget. Any other result ends
// the task. When the task runs again, next is moved to now plus the interval
// of the policy that allowed it, saturating at math.MaxInt64.
//
// A negative now leaves the plan untouched and returns ErrInvalidInstant.
// When the plan rejects an update the task ends with DecisionDone and the error.
func Reschedule(plan *task.Plan, result task.Result, now int64) (Decision, error) {
	if now < 0 {
		return DecisionDone, fmt.Errorf("%w: now=%d", ErrInvalidInstant, now)
	}
	if err := plan.SetLast(now); err != nil {
		return DecisionDone, err
	}

	switch result {
	case task.ResultFailure:
		if retry := plan.Retry(); retry != nil && retry.Enabled() {
			retry.MarkExecuted()
			if retry.NeedsAnotherRun(now) {
				return requeue(plan, retry.NextRun(now), DecisionRetry)
			}
		}
	case task.ResultSuccess:
	default:
		return DecisionDone, nil
	}

	schedule := plan.Schedule()
	if schedule == nil || !schedule.Enabled() {
		return DecisionDone, nil
	}

	schedule.MarkExecuted()
	if !schedule.NeedsAnotherRun(now) {
		return DecisionDone, nil
	}

	if retry := plan.Retry(); retry != nil {
		if err := retry.SetExecuted(0); err != nil {
			return DecisionDone, err
		}
	}
	return requeue(plan, schedule.NextRun(now), DecisionRepeat)
}

func requeue(plan *task.Plan, next int64, d Decision) (Decision, error) {
	if err := plan.SetNext(next); err != nil {
		return DecisionDone, err
	}
	return d, nil
}
