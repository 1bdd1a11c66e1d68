package logger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/multicast/pkg/config"
	"github.com/dmitrymomot/multicast/pkg/environment"
)

var (
	// ErrInvalidLevel is returned when LOG_LEVEL is not a slog level name.
	ErrInvalidLevel = errors.New("logger: invalid level")

	// ErrInvalidFormat is returned when LOG_FORMAT is neither json nor text.
	ErrInvalidFormat = errors.New("logger: invalid format")
)

// Config describes a logger in environment variables.
// Empty Level and Format fall back to the preset of Env.
type Config struct {
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME"`
}

// Options converts the configuration into logger options.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithEnvironment(environment.Parse(c.Env), c.Service)}

	if c.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
		}
		opts = append(opts, WithLevel(lvl))
	}

	switch f := Format(c.Format); f {
	case "":
	case FormatJSON, FormatText:
		opts = append(opts, WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	return opts, nil
}

// FromEnv builds a logger from LOG_LEVEL, LOG_FORMAT, APP_ENV and APP_NAME,
// reading .env files first when given through config options. Extra options
// are applied after the environment and win over it.
func FromEnv(loadOpts []config.Option, opts ...Option) (*slog.Logger, error) {
	cfg, err := config.Load[Config](loadOpts...)
	if err != nil {
		return nil, err
	}
	envOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(envOpts, opts...)...), nil
}
