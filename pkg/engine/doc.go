// Package engine dispatches tasks built with package task to registered
// Executables and decides, from each task's Plan, whether the task runs again.
//
// The package is organised around three pieces:
//
//   - Invoke: the boundary around a single Executable call. It recovers
//     panics and enforces the completion contract: an attempt that does not
//     end FINISHED, or returns an unknown Result, counts as FAILURE.
//   - Reschedule: applies an attempt's Result to the Plan. FAILURE consults
//     the retry policy and then the schedule, SUCCESS consults the schedule,
//     and CANCELED, MERGED or REJECTED end the task.
//   - Dispatcher: claims due entries from a Store by priority, builds a
//     RuntimeTask with a fresh Context, invokes the Executable registered for
//     the content type and releases or completes the entry.
//
// A Store holds entries between attempts. MemoryStore is the in-process
// implementation; it hands out at most one claim per task at a time, which is
// what keeps Plan and RepeatPolicy mutations single-threaded.
//
// # Usage
//
//	store := engine.NewMemoryStore()
//	d, err := engine.NewDispatcher(store,
//	    engine.WithPullInterval(time.Second),
//	    engine.WithMaxConcurrent(4),
//	    engine.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	_ = d.Register(10001, task.ContentExecutable(removeUser))
//
//	id, err := d.Submit(ctx, t)
//
//	g.Go(d.Run(ctx))
//
// # Error Handling
//
// Sentinel errors (ErrStoreNil, ErrNoExecutables, ErrExecutableNotFound, ...)
// can be checked with errors.Is. Errors from Invoke describe why an attempt was
// normalized to FAILURE; the attempt itself has already been accounted for.
package engine
