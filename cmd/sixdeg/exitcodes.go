// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/katalvlaran/sixdeg/core"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (invalid config file, env or flags)
	ExitDataError   = 3 // Data error (unreadable records, strict build rejected input)
	ExitNotFound    = 4 // Named vertex is not in the universe
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// withCode wraps err with an exit code; nil stays nil.
func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps err to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, core.ErrVertexNotFound) {
		return ExitNotFound
	}
	return ExitError
}
