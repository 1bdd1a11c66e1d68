package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix only reads variables starting with prefix; tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithFiles reads .env files whose values apply where the process
// environment does not set the variable. The process environment is not modified.
func WithFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.environment = vars
		}
	}
}

// Load parses environment variables into a new T according to its `env`
// and `envDefault` field tags.
//
// Example:
//
//	type ReporterConfig struct {
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//		Env    string `env:"APP_ENV,required"`
//	}
//
//	cfg, err := config.Load[ReporterConfig](config.WithFiles(".env"))
func Load[T any](opts ...Option) (T, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var v T

	vars := maps.Clone(o.environment)
	if vars == nil {
		vars = environ()
	}

	if len(o.files) > 0 {
		fileVars, err := godotenv.Read(o.files...)
		if err != nil {
			return v, errors.Join(ErrReadingEnvFile, err)
		}
		for k, val := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(&v, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}

	return v, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the program cannot start without.
func MustLoad[T any](opts ...Option) T {
	v, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return v
}

// environ returns a mutable copy of the process environment.
func environ() map[string]string {
	pairs := os.Environ()
	vars := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
