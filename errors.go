// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "fmt"

// ConfigError reports an inconsistent forest configuration, raised from
// NewForest before any storage is allocated.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "ddforest: config: " + e.Msg }

func newConfigError(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ExhaustedError reports that a resource (node handle space, cache
// capacity) could not grow any further. The forest that raised it is
// still valid but the operation that hit the ceiling must be discarded
// by the caller.
type ExhaustedError struct {
	Msg string
}

func (e *ExhaustedError) Error() string { return "ddforest: exhausted: " + e.Msg }

func newExhaustedError(format string, args ...any) error {
	return &ExhaustedError{Msg: fmt.Sprintf(format, args...)}
}

// InvariantError reports a violated internal invariant: a bug, not a
// user error. Any InvariantError poisons the forest that raised it;
// every subsequent call on that forest returns an InvariantError
// immediately instead of touching storage again.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "ddforest: invariant violated: " + e.Msg }

func newInvariantError(format string, args ...any) error {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}

// UserError reports malformed external input: a file the parser could
// not make sense of, or an assignment vector of the wrong length.
type UserError struct {
	Msg string
}

func (e *UserError) Error() string { return "ddforest: " + e.Msg }

func newUserError(format string, args ...any) error {
	return &UserError{Msg: fmt.Sprintf(format, args...)}
}

// poisonedErr returns an error if the forest has been poisoned by a prior
// InvariantError, taking the forest permanently out of service.
func (f *Forest) poisonedErr() error {
	if f.poison != nil {
		return f.poison
	}
	return nil
}

// poisonNow marks the forest as poisoned and returns the wrapping error,
// called whenever an internal assertion trips.
func (f *Forest) poisonNow(err *InvariantError) error {
	f.poison = err
	return err
}
