// SPDX-License-Identifier: MIT
// Package: sixdeg/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Nil arguments are ignored; defaults stay in place.
//   • Later options override earlier ones.

package builder

import "log/slog"

// BuilderOption customizes Build by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithStrict makes Build fail on the first unresolvable membership instead of
// skipping it into the Report.
func WithStrict() BuilderOption {
	return func(c *builderConfig) {
		c.strict = true
	}
}

// WithLogger routes build progress and skipped records to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCapacity pre-sizes the vertex catalog. Non-positive values are ignored.
func WithCapacity(n int) BuilderOption {
	return func(c *builderConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}
