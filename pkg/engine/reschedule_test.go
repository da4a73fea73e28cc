package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskengine/pkg/engine"
	"github.com/dmitrymomot/taskengine/pkg/task"
)

func clockAt() time.Time { return baseTime }

func reschedule(t *testing.T, plan *task.Plan, result task.Result, now int64) engine.Decision {
	t.Helper()

	d, err := engine.Reschedule(plan, result, now)
	require.NoError(t, err)
	return d
}

func TestReschedule_NoPolicies(t *testing.T) {
	t.Parallel()

	for _, result := range []task.Result{
		task.ResultSuccess,
		task.ResultFailure,
		task.ResultCanceled,
		task.ResultMerged,
		task.ResultRejected,
	} {
		t.Run(result.String(), func(t *testing.T) {
			t.Parallel()

			plan := planBuilder(clockAt).MustBuild()
			now := baseMs + 500

			assert.Equal(t, engine.DecisionDone, reschedule(t, plan, result, now))
			assert.Equal(t, now, plan.Last())
			assert.Equal(t, baseMs, plan.Next())
		})
	}
}

func TestReschedule_Retry(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).EnableRetry().Max(3).IntervalInSeconds(1).MustBuild()
	retry := plan.Retry()

	now := baseMs
	assert.Equal(t, engine.DecisionRetry, reschedule(t, plan, task.ResultFailure, now))
	assert.Equal(t, 1, retry.Executed())
	assert.Equal(t, now+1000, plan.Next())

	now += 1000
	assert.Equal(t, engine.DecisionRetry, reschedule(t, plan, task.ResultFailure, now))
	assert.Equal(t, 2, retry.Executed())
	assert.Equal(t, now+1000, plan.Next())

	now += 1000
	assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultFailure, now))
	assert.Equal(t, 3, retry.Executed())
	assert.Equal(t, now, plan.Last())
}

func TestReschedule_RetryDeadline(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).
		EnableRetry().Max(10).IntervalInSeconds(10).DeadlineAfterSeconds(15).
		MustBuild()

	assert.Equal(t, engine.DecisionRetry, reschedule(t, plan, task.ResultFailure, baseMs))
	assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultFailure, baseMs+10_000))
}

func TestReschedule_DisabledRetry(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).EnableRetry().Max(3).Disabled().MustBuild()

	assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultFailure, baseMs))
	assert.Equal(t, 0, plan.Retry().Executed())
}

func TestReschedule_Schedule(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).
		EnableSchedule().Max(3).IntervalInMinutes(1).Plan().
		EnableRetry().Max(2).
		MustBuild()
	schedule := plan.Schedule()

	now := baseMs
	assert.Equal(t, engine.DecisionRepeat, reschedule(t, plan, task.ResultSuccess, now))
	assert.Equal(t, 1, schedule.Executed())
	assert.Equal(t, now+60_000, plan.Next())

	now += 60_000
	assert.Equal(t, engine.DecisionRepeat, reschedule(t, plan, task.ResultSuccess, now))
	assert.Equal(t, 2, schedule.Executed())

	now += 60_000
	assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultSuccess, now))
	assert.Equal(t, 3, schedule.Executed())
	assert.Equal(t, 0, plan.Retry().Executed())
}

func TestReschedule_ExhaustedRetryFallsBackToSchedule(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).
		EnableSchedule().Max(5).IntervalInMinutes(10).Plan().
		EnableRetry().Max(2).IntervalInSeconds(5).
		MustBuild()

	now := baseMs
	assert.Equal(t, engine.DecisionRetry, reschedule(t, plan, task.ResultFailure, now))
	assert.Equal(t, now+5_000, plan.Next())
	assert.Equal(t, 0, plan.Schedule().Executed())

	now += 5_000
	assert.Equal(t, engine.DecisionRepeat, reschedule(t, plan, task.ResultFailure, now))
	assert.Equal(t, now+600_000, plan.Next())
	assert.Equal(t, 1, plan.Schedule().Executed())
	assert.Equal(t, 0, plan.Retry().Executed(), "a new scheduled run gets a fresh retry budget")
}

func TestReschedule_ScheduleDeadline(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).
		EnableSchedule().Max(100).IntervalInSeconds(10).DeadlineAfterSeconds(5).
		MustBuild()

	assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultSuccess, baseMs))
	assert.Equal(t, 1, plan.Schedule().Executed())
}

func TestReschedule_TerminalResults(t *testing.T) {
	t.Parallel()

	for _, result := range []task.Result{task.ResultCanceled, task.ResultMerged, task.ResultRejected} {
		t.Run(result.String(), func(t *testing.T) {
			t.Parallel()

			plan := planBuilder(clockAt).
				EnableSchedule().Max(3).Plan().
				EnableRetry().Max(3).
				MustBuild()

			assert.Equal(t, engine.DecisionDone, reschedule(t, plan, result, baseMs))
			assert.Equal(t, 0, plan.Schedule().Executed())
			assert.Equal(t, 0, plan.Retry().Executed())
		})
	}
}

func TestReschedule_IntervalOverflow(t *testing.T) {
	t.Parallel()

	t.Run("schedule without deadline waits until the end of time", func(t *testing.T) {
		t.Parallel()

		plan := planBuilder(clockAt).EnableSchedule().Max(3).IntervalInMillis(math.MaxInt64).MustBuild()

		assert.Equal(t, engine.DecisionRepeat, reschedule(t, plan, task.ResultSuccess, baseMs))
		assert.Equal(t, int64(math.MaxInt64), plan.Next())
		assert.False(t, plan.Due(baseMs))
	})

	t.Run("schedule interval past deadline ends the task", func(t *testing.T) {
		t.Parallel()

		plan := planBuilder(clockAt).
			EnableSchedule().Max(3).IntervalInMillis(math.MaxInt64).DeadlineAt(baseMs + 1000).
			MustBuild()

		assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultSuccess, baseMs))
		assert.Equal(t, baseMs, plan.Next())
	})

	t.Run("retry interval past deadline falls through", func(t *testing.T) {
		t.Parallel()

		plan := planBuilder(clockAt).
			EnableRetry().Max(3).IntervalInMillis(math.MaxInt64).DeadlineAt(baseMs + 1000).
			MustBuild()

		assert.Equal(t, engine.DecisionDone, reschedule(t, plan, task.ResultFailure, baseMs))
	})
}

func TestReschedule_NegativeNow(t *testing.T) {
	t.Parallel()

	plan := planBuilder(clockAt).EnableSchedule().Max(3).MustBuild()

	d, err := engine.Reschedule(plan, task.ResultSuccess, -1)
	assert.ErrorIs(t, err, engine.ErrInvalidInstant)
	assert.Equal(t, engine.DecisionDone, d)
	assert.Zero(t, plan.Last())
	assert.Zero(t, plan.Schedule().Executed())
}

func TestDecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		decision engine.Decision
		str      string
		requeue  bool
	}{
		{engine.DecisionDone, "done", false},
		{engine.DecisionRetry, "retry", true},
		{engine.DecisionRepeat, "repeat", true},
		{engine.Decision(9), "Decision(9)", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.decision.String())
		assert.Equal(t, tt.requeue, tt.decision.Requeue())
	}
}
