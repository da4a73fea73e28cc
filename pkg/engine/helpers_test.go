package engine_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

var baseMs = baseTime.UnixMilli()

type testClock struct {
	ms atomic.Int64
}

func newTestClock() *testClock {
	c := &testClock{}
	c.ms.Store(baseMs)
	return c
}

func (c *testClock) Now() time.Time {
	return time.UnixMilli(c.ms.Load()).UTC()
}

func (c *testClock) Advance(d time.Duration) {
	c.ms.Add(d.Milliseconds())
}

func planBuilder(clock func() time.Time) *task.PlanBuilder {
	return task.NewPlanBuilder(task.WithClock(clock))
}

func newTask(t *testing.T, typ int, plan *task.Plan) *task.Task {
	t.Helper()

	content, err := task.NewContentBuilder(typ).AddString("name", "test").Build()
	require.NoError(t, err)
	tk, err := task.New(content, plan)
	require.NoError(t, err)
	return tk
}

// MockExecutable is a testify mock of task.Executable.
type MockExecutable struct {
	mock.Mock
}

func (m *MockExecutable) Apply(ctx context.Context, rt *task.RuntimeTask) task.Result {
	args := m.Called(ctx, rt)
	return args.Get(0).(task.Result)
}

// finishing makes the mocked Apply finish the runtime task before returning.
func finishing(args mock.Arguments) {
	_ = args.Get(1).(*task.RuntimeTask).Finish()
}

func finishWith(result task.Result) task.Executable {
	return task.ExecutableFunc(func(_ context.Context, rt *task.RuntimeTask) task.Result {
		_ = rt.Finish()
		return result
	})
}
