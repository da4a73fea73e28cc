package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskengine/pkg/config"
	"github.com/dmitrymomot/taskengine/pkg/engine"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := engine.LoadConfig(config.WithPrefix("ENGINE_DEFAULTS_TEST_"))
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.PullInterval)
	assert.Equal(t, 4, cfg.MaxConcurrent)
	assert.Equal(t, 5*time.Minute, cfg.ExecutionTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ENV_TEST_ENGINE_PULL_INTERVAL", "250ms")
	t.Setenv("ENV_TEST_ENGINE_MAX_CONCURRENT", "8")
	t.Setenv("ENV_TEST_ENGINE_EXECUTION_TIMEOUT", "0s")
	t.Setenv("ENV_TEST_ENGINE_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := engine.LoadConfig(config.WithPrefix("ENV_TEST_"))
	require.NoError(t, err)

	assert.Equal(t, engine.Config{
		PullInterval:     250 * time.Millisecond,
		MaxConcurrent:    8,
		ExecutionTimeout: 0,
		ShutdownTimeout:  3 * time.Second,
	}, cfg)

	d, err := engine.NewDispatcher(engine.NewMemoryStore(), cfg.Options()...)
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("BAD_TEST_ENGINE_MAX_CONCURRENT", "many")

	_, err := engine.LoadConfig(config.WithPrefix("BAD_TEST_"))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
