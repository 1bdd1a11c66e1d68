// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct-tag parsing and
// `github.com/joho/godotenv` for optional .env files:
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	cfg, err := config.Load[LogConfig](
//	    config.WithFiles(".env"),
//	    config.WithPrefix("DEMO_"),
//	)
//
// Values from .env files only fill variables the process environment leaves
// unset, and the process environment is never modified. WithEnvironment swaps
// the source for an explicit map, which keeps tests hermetic.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors, compare with errors.Is:
//
//   - ErrParsingConfig  – variables could not be parsed into the struct
//     (missing required value, malformed number, non-struct type).
//   - ErrReadingEnvFile – a requested .env file could not be read.
package config
