package check

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig marks contradictory or malformed plugin arguments.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSpeeds is returned when neither metric could be read from the
	// speed test output.
	ErrNoSpeeds = errors.New("No download and upload speed recognised") //nolint:staticcheck // message is part of the plugin output
)

// ConfigError wraps a configuration problem. Its message is shown to the
// operator verbatim and it matches ErrInvalidConfig under errors.Is.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// Configf returns a ConfigError with a formatted message.
func Configf(format string, args ...interface{}) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// Expected reports whether err belongs to the failures the plugin anticipates
// (bad arguments, unreadable output). Anything else is an unexpected failure.
func Expected(err error) bool {
	return errors.Is(err, ErrInvalidConfig) || errors.Is(err, ErrNoSpeeds)
}
