package engine

import (
	"time"

	"github.com/dmitrymomot/taskengine/pkg/config"
)

// Config holds dispatcher settings read from the environment.
type Config struct {
	PullInterval     time.Duration `env:"ENGINE_PULL_INTERVAL" envDefault:"1s"`
	MaxConcurrent    int           `env:"ENGINE_MAX_CONCURRENT" envDefault:"4"`
	ExecutionTimeout time.Duration `env:"ENGINE_EXECUTION_TIMEOUT" envDefault:"5m"`
	ShutdownTimeout  time.Duration `env:"ENGINE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads Config from the environment and any given .env files.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the configuration into dispatcher options.
func (c Config) Options() []Option {
	return []Option{
		WithPullInterval(c.PullInterval),
		WithMaxConcurrent(c.MaxConcurrent),
		WithExecutionTimeout(c.ExecutionTimeout),
		WithShutdownTimeout(c.ShutdownTimeout),
	}
}
