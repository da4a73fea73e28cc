// Package config loads typed configuration structs from environment variables.
//
// Values come from the process environment, optionally seeded from .env files
// through github.com/joho/godotenv, and are parsed into structs tagged for
// github.com/caarlos0/env. Each (type, prefix) pair is parsed once and cached,
// so components may call Load freely without re-reading the environment.
//
// # Usage
//
//	type EngineConfig struct {
//	    PullInterval  time.Duration `env:"PULL_INTERVAL" envDefault:"1s"`
//	    MaxConcurrent int           `env:"MAX_CONCURRENT" envDefault:"4"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg, config.WithPrefix("ENGINE_")); err != nil {
//	    return err
//	}
//
// MustLoad panics instead of returning an error and suits values the process
// cannot start without.
package config
