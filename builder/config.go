// SPDX-License-Identifier: MIT
// Package: sixdeg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • strict   = false          (skip and report unresolvable records)
//   • logger   = discard        (library code stays silent unless asked)
//   • capacity = len(Entities)  (resolved in Build)

package builder

import (
	"log/slog"

	"github.com/katalvlaran/sixdeg/internal/logging"
)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	strict   bool
	logger   *slog.Logger
	capacity int
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
