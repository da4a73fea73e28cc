package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

func TestNewContent(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive type", func(t *testing.T) {
		t.Parallel()

		for _, typ := range []int{0, -5} {
			c, err := task.NewContent(typ)
			assert.ErrorIs(t, err, task.ErrInvalidValue)
			assert.Nil(t, c)
		}
	})

	t.Run("type without parameters", func(t *testing.T) {
		t.Parallel()

		c, err := task.NewContent(1)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Type())
		assert.Equal(t, 0, c.Len())
		assert.NotNil(t, c.Parameters())
		assert.Empty(t, c.Parameters())
		assert.Equal(t, "TaskContent[type=1]", c.String())
	})

	t.Run("rejects unnamed parameter", func(t *testing.T) {
		t.Parallel()

		_, err := task.NewContent(1, task.Parameter{})
		assert.ErrorIs(t, err, task.ErrNilArgument)
	})

	t.Run("parameters are copied", func(t *testing.T) {
		t.Parallel()

		p, err := task.StringParam("a", "1")
		require.NoError(t, err)
		params := []task.Parameter{p}

		c, err := task.NewContent(7, params...)
		require.NoError(t, err)

		params[0], _ = task.StringParam("b", "2")
		got := c.Parameters()
		got[0], _ = task.StringParam("c", "3")

		assert.Equal(t, "TaskContent[type=7,a=1]", c.String())
	})
}

func TestContentBuilder(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		c, err := task.NewContentBuilder(3).
			AddString("a", "1").
			AddString("b", "2").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "TaskContent[type=3,a=1,b=2]", c.String())
	})

	t.Run("all value kinds", func(t *testing.T) {
		t.Parallel()

		c, err := task.NewContentBuilder(10001).
			AddLong("uid", 245001).
			AddInt("count", 3).
			AddBool("notify", true).
			AddDouble("ratio", 2).
			AddDouble("share", 0.25).
			AddString("reason", "spam").
			Build()
		require.NoError(t, err)

		assert.Equal(t,
			"TaskContent[type=10001,uid=245001,count=3,notify=true,ratio=2.0,share=0.25,reason=spam]",
			c.String())

		uid, ok := c.Parameter("uid")
		require.True(t, ok)
		assert.Equal(t, task.KindLong, uid.Kind())
		assert.Equal(t, int64(245001), uid.Value())

		_, ok = c.Parameter("missing")
		assert.False(t, ok)
	})

	t.Run("invalid type fails at build", func(t *testing.T) {
		t.Parallel()

		_, err := task.NewContentBuilder(0).AddString("a", "1").Build()
		assert.ErrorIs(t, err, task.ErrInvalidValue)
	})

	t.Run("empty parameter name fails at build", func(t *testing.T) {
		t.Parallel()

		_, err := task.NewContentBuilder(1).AddString("", "1").AddInt("n", 1).Build()
		assert.ErrorIs(t, err, task.ErrNilArgument)
	})

	t.Run("build freezes a snapshot", func(t *testing.T) {
		t.Parallel()

		b := task.NewContentBuilder(2).AddInt("a", 1)
		first, err := b.Build()
		require.NoError(t, err)

		b.AddInt("b", 2)
		second, err := b.Build()
		require.NoError(t, err)

		assert.Equal(t, "TaskContent[type=2,a=1]", first.String())
		assert.Equal(t, "TaskContent[type=2,a=1,b=2]", second.String())
	})
}
