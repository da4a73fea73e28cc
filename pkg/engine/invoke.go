package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

// Invoke runs exec against rt and normalizes the outcome.
//
// The returned Result is always valid and rt is always FINISHED afterwards.
// A panic, an unknown result or an attempt left unfinished yields
// ResultFailure together with an error describing the cause.
func Invoke(ctx context.Context, exec task.Executable, rt *task.RuntimeTask) (result task.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			rt.ForceFinish()
			result = task.ResultFailure
			err = fmt.Errorf("%w: %v", ErrExecutablePanic, r)
		}
	}()

	result = exec.Apply(ctx, rt)

	var errs []error
	if !result.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidResult, int(result)))
	}
	if rt.ForceFinish() {
		errs = append(errs, ErrNotFinished)
	}
	if len(errs) > 0 {
		return task.ResultFailure, errors.Join(errs...)
	}

	return result, nil
}
