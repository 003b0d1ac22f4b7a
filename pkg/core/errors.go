package core

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfiguration is matched by every *ConfigError.
var ErrInvalidConfiguration = errors.New("invalid search configuration")

// ConfigError reports missing, mistyped or unknown builder parameters.
// All problems found during one call are collected together.
type ConfigError struct {
	Problems *multierror.Error
}

func newConfigError(problems *multierror.Error) *ConfigError {
	problems.ErrorFormat = func(errs []error) string {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return &ConfigError{Problems: problems}
}

func (e *ConfigError) Error() string {
	if e.Problems == nil || len(e.Problems.Errors) == 0 {
		return ErrInvalidConfiguration.Error()
	}
	return ErrInvalidConfiguration.Error() + ": " + e.Problems.Error()
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func (e *ConfigError) Unwrap() error {
	if e.Problems == nil {
		return nil
	}
	return e.Problems.ErrorOrNil()
}
