// Package task provides the data and policy model of a deferred, repeatable task.
//
// A Task pairs a Content (what to do: a positive type code plus ordered, typed
// parameters) with a Plan (when and how often: priority, start/next/last instants
// and optional schedule and retry RepeatPolicies). At dispatch time a Task is
// wrapped together with a fresh Context into a RuntimeTask and handed to an
// Executable, which returns a Result.
//
// The package runs nothing and persists nothing. It answers two questions for an
// engine built on top of it: "is this task eligible to run again?" via
// RepeatPolicy.NeedsAnotherRun, and "how should it be prioritized?" via Priority.
//
// # Time
//
// All instants are Unix milliseconds (int64) and all intervals are milliseconds.
// Zero means "unset": no deadline, no interval, never executed.
//
// # Usage
//
//	content, err := task.NewContentBuilder(10001).
//	    AddLong("uid", 245001).
//	    AddBool("notify", true).
//	    Build()
//	if err != nil {
//	    return err
//	}
//
//	b := task.NewPlanBuilder().PriorityHigh().StartAfterSeconds(15)
//	b.EnableSchedule().Max(10).IntervalInHours(2)
//	b.EnableRetry().Max(3).IntervalInSeconds(10)
//	plan, err := b.Build()
//	if err != nil {
//	    return err
//	}
//
//	t, err := task.New(content, plan)
//
// # Concurrency
//
// Plan and RepeatPolicy are not synchronized. An engine must keep at most one
// execution attempt in flight per task and mutate the plan only between attempts.
// Context belongs to the single Executable invocation of its RuntimeTask.
//
// # Error Handling
//
// Construction and mutation fail fast with errors wrapping ErrNilArgument or
// ErrInvalidValue; check them with errors.Is. Eligibility checks never fail.
package task
