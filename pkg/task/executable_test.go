package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

func TestExecutableFunc(t *testing.T) {
	t.Parallel()

	rt, err := task.NewRuntimeTask(newTestTask(t), task.NewContext())
	require.NoError(t, err)

	var exec task.Executable = task.ExecutableFunc(func(ctx context.Context, rt *task.RuntimeTask) task.Result {
		_ = rt.Finish()
		return task.ResultMerged
	})

	assert.Equal(t, task.ResultMerged, exec.Apply(context.Background(), rt))
	assert.Equal(t, task.StatusFinished, rt.Status())
}

func TestContentExecutable(t *testing.T) {
	t.Parallel()

	tk := newTestTask(t)
	tctx := task.NewContext()
	rt, err := task.NewRuntimeTask(tk, tctx)
	require.NoError(t, err)
	require.NoError(t, rt.Transition(task.StatusWaiting))
	require.NoError(t, rt.Transition(task.StatusRunning))

	exec := task.ContentExecutable(func(_ context.Context, content *task.Content, plan *task.Plan, c *task.Context) task.Result {
		assert.Same(t, tk.Content(), content)
		assert.Same(t, tk.Plan(), plan)
		assert.Same(t, tctx, c)
		_ = c.Set("seen", true)
		return task.ResultSuccess
	})

	assert.Equal(t, task.ResultSuccess, exec.Apply(context.Background(), rt))
	assert.Equal(t, task.StatusFinished, rt.Status())

	seen, ok := tctx.Get("seen")
	assert.True(t, ok)
	assert.Equal(t, true, seen)
}

func TestContentExecutable_LeavesUnstartedAttempt(t *testing.T) {
	t.Parallel()

	for _, status := range []task.Status{task.StatusInitial, task.StatusWaiting} {
		t.Run(status.String(), func(t *testing.T) {
			t.Parallel()

			rt, err := task.NewRuntimeTask(newTestTask(t), task.NewContext())
			require.NoError(t, err)
			if status == task.StatusWaiting {
				require.NoError(t, rt.Transition(task.StatusWaiting))
			}

			exec := task.ContentExecutable(func(context.Context, *task.Content, *task.Plan, *task.Context) task.Result {
				return task.ResultSuccess
			})

			assert.Equal(t, task.ResultSuccess, exec.Apply(context.Background(), rt))
			assert.Equal(t, status, rt.Status())
		})
	}
}

func TestContentExecutable_KeepsFinishedAttempt(t *testing.T) {
	t.Parallel()

	rt, err := task.NewRuntimeTask(newTestTask(t), task.NewContext())
	require.NoError(t, err)
	require.NoError(t, rt.Finish())

	exec := task.ContentExecutable(func(context.Context, *task.Content, *task.Plan, *task.Context) task.Result {
		return task.ResultCanceled
	})

	assert.Equal(t, task.ResultCanceled, exec.Apply(context.Background(), rt))
	assert.Equal(t, task.StatusFinished, rt.Status())
}
