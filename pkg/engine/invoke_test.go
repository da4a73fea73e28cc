package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskengine/pkg/engine"
	"github.com/dmitrymomot/taskengine/pkg/task"
)

func newRuntime(t *testing.T) *task.RuntimeTask {
	t.Helper()

	rt, err := task.NewRuntimeTask(newTask(t, 1, nil), task.NewContext())
	require.NoError(t, err)
	require.NoError(t, rt.Transition(task.StatusWaiting))
	require.NoError(t, rt.Transition(task.StatusRunning))
	return rt
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exec     task.Executable
		want     task.Result
		wantErrs []error
	}{
		{
			name: "finished success",
			exec: finishWith(task.ResultSuccess),
			want: task.ResultSuccess,
		},
		{
			name: "finished canceled",
			exec: finishWith(task.ResultCanceled),
			want: task.ResultCanceled,
		},
		{
			name: "finished failure",
			exec: finishWith(task.ResultFailure),
			want: task.ResultFailure,
		},
		{
			name: "not finished",
			exec: task.ExecutableFunc(func(context.Context, *task.RuntimeTask) task.Result {
				return task.ResultSuccess
			}),
			want:     task.ResultFailure,
			wantErrs: []error{engine.ErrNotFinished},
		},
		{
			name:     "invalid result",
			exec:     finishWith(task.Result(42)),
			want:     task.ResultFailure,
			wantErrs: []error{engine.ErrInvalidResult},
		},
		{
			name: "invalid result and not finished",
			exec: task.ExecutableFunc(func(context.Context, *task.RuntimeTask) task.Result {
				return task.Result(-1)
			}),
			want:     task.ResultFailure,
			wantErrs: []error{engine.ErrInvalidResult, engine.ErrNotFinished},
		},
		{
			name: "panic",
			exec: task.ExecutableFunc(func(context.Context, *task.RuntimeTask) task.Result {
				panic("boom")
			}),
			want:     task.ResultFailure,
			wantErrs: []error{engine.ErrExecutablePanic},
		},
		{
			name: "panic after finishing",
			exec: task.ExecutableFunc(func(_ context.Context, rt *task.RuntimeTask) task.Result {
				_ = rt.Finish()
				panic(errors.New("late"))
			}),
			want:     task.ResultFailure,
			wantErrs: []error{engine.ErrExecutablePanic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rt := newRuntime(t)
			got, err := engine.Invoke(context.Background(), tt.exec, rt)

			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
			assert.Equal(t, task.StatusFinished, rt.Status())

			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestInvoke_PanicMessage(t *testing.T) {
	t.Parallel()

	exec := task.ExecutableFunc(func(context.Context, *task.RuntimeTask) task.Result {
		panic("disk full")
	})

	_, err := engine.Invoke(context.Background(), exec, newRuntime(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestInvoke_PassesContextAndRuntime(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request-1")
	rt := newRuntime(t)

	exec := &MockExecutable{}
	exec.On("Apply", ctx, rt).Run(finishing).Return(task.ResultMerged).Once()

	got, err := engine.Invoke(ctx, exec, rt)
	require.NoError(t, err)
	assert.Equal(t, task.ResultMerged, got)
	exec.AssertExpectations(t)
}

func TestInvoke_MockNotFinishing(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	exec := &MockExecutable{}
	exec.On("Apply", mock.Anything, rt).Return(task.ResultSuccess)

	got, err := engine.Invoke(context.Background(), exec, rt)
	assert.Equal(t, task.ResultFailure, got)
	assert.ErrorIs(t, err, engine.ErrNotFinished)
	exec.AssertNumberOfCalls(t, "Apply", 1)
}
