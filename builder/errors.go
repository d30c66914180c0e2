// SPDX-License-Identifier: MIT
// Package: sixdeg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Per-record problems are collected into Report, not returned one by one.
//   • Build never panics on bad input.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilRecords indicates Build was called without a Records value.
var ErrNilRecords = errors.New("builder: records are nil")

// ErrUnknownEntity indicates a membership references an entity id that has
// no entry in Records.Entities.
// Usage: if errors.Is(skip.Err, ErrUnknownEntity) { /* fix the entity table */ }.
var ErrUnknownEntity = errors.New("builder: unknown entity id")

// ErrUnknownGroup indicates a membership references a group id that has no
// entry in Records.Groups.
var ErrUnknownGroup = errors.New("builder: unknown group id")

// ErrStrict is returned by Build under WithStrict when any record is skipped.
// The wrapped chain also matches the skip cause (ErrUnknownEntity/ErrUnknownGroup).
var ErrStrict = errors.New("builder: strict build rejected input")

// builderErrorf wraps an inner error with the given method context.
// It returns an error of the form "<Method>: <formatted message>" that keeps
// any %w operands in the chain for errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
