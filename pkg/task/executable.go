package task

import "context"

// Executable performs the work described by a RuntimeTask.
//
// Apply must return exactly one Result and leave the runtime task FINISHED.
// An engine treats an attempt that is not FINISHED after Apply as a FAILURE.
type Executable interface {
	Apply(ctx context.Context, rt *RuntimeTask) Result
}

// ExecutableFunc adapts a function to the Executable interface.
type ExecutableFunc func(ctx context.Context, rt *RuntimeTask) Result

func (f ExecutableFunc) Apply(ctx context.Context, rt *RuntimeTask) Result {
	return f(ctx, rt)
}

// ContentFunc executes a task given its unpacked parts.
type ContentFunc func(ctx context.Context, content *Content, plan *Plan, tctx *Context) Result

// ContentExecutable adapts a ContentFunc to the Executable interface.
// When fn returns on a RUNNING attempt the adapter finishes it. Attempts that
// were never started are left as they are for the engine to report.
func ContentExecutable(fn ContentFunc) Executable {
	return ExecutableFunc(func(ctx context.Context, rt *RuntimeTask) Result {
		t := rt.Task()
		result := fn(ctx, t.Content(), t.Plan(), rt.Context())
		if rt.Status() == StatusRunning {
			_ = rt.Finish()
		}
		return result
	})
}
