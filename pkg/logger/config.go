package logger

import "log/slog"

// Config holds logger settings read from the environment.
type Config struct {
	Service string `env:"SERVICE_NAME" envDefault:"taskengine"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Level   string `env:"LOG_LEVEL"`
	Format  Format `env:"LOG_FORMAT"`

	// AddSource adds the caller's file and line to every record.
	AddSource bool `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// Options converts the config into logger options. Level and Format, when set,
// override the environment defaults.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithEnvironment(c.Env, c.Service)}

	if c.Level != "" {
		level, err := ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}

	switch c.Format {
	case "":
	case FormatJSON:
		opts = append(opts, WithJSONFormatter())
	case FormatText:
		opts = append(opts, WithTextFormatter())
	default:
		return nil, ErrInvalidFormat
	}

	if c.AddSource {
		opts = append(opts, WithHandlerOptions(&slog.HandlerOptions{AddSource: true}))
	}

	return opts, nil
}
