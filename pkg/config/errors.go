package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingEnvFile is returned when one of the requested .env files cannot be read.
	ErrReadingEnvFile = errors.New("failed to read env file")
)
