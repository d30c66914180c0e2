// SPDX-License-Identifier: MIT

package query

import "errors"

// Sentinel errors for query operations. Branch with errors.Is.
var (
	// ErrGraphNil is returned when a nil graph is queried.
	ErrGraphNil = errors.New("query: graph is nil")

	// ErrTreeNil is returned when a nil tree is queried.
	ErrTreeNil = errors.New("query: tree is nil")

	// ErrInvertedRange is returned with an empty result when high < low.
	// It is a warning: callers may print it and continue.
	ErrInvertedRange = errors.New("query: high bound is below low bound")

	// ErrRankOutOfRange is returned when |k| exceeds the ranked list length.
	ErrRankOutOfRange = errors.New("query: magnitude larger than list size")

	// ErrOptionViolation is returned when an invalid RankOption is supplied.
	ErrOptionViolation = errors.New("query: invalid option supplied")
)
