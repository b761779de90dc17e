package domain

import (
	"errors"
	"fmt"
)

// ErrInputUnavailable indicates the git layer could not supply a required
// input (e.g. no commit to read). It signals a usage error, not a policy
// violation, and is reported separately from validation failures.
var ErrInputUnavailable = errors.New("required input unavailable")

// ErrViolations is returned by the CLI layer after rendering a failed report,
// so the process exits non-zero without printing a second diagnostic.
var ErrViolations = errors.New("validation failed")

// ConfigError reports a broken configuration: malformed TOML, a malformed
// environment value, an invalid CLI value, or an unreadable explicit config
// path. It aborts the run before any validation; a broken config must not
// silently fall back to defaults.
type ConfigError struct {
	Source string // offending file path, env var, or flag name
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration (%s): %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AsConfigError reports whether err is (or wraps) a ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	ok := errors.As(err, &ce)
	return ce, ok
}
