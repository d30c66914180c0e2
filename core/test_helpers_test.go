// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for sixdeg/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep fixtures free of goroutine-side *testing.T usage.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sixdeg/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"
)

// Common labels used across core tests (avoid magic strings in test bodies).
const (
	LabelAB = "ab"
	LabelBC = "bc"
	LabelCD = "cd"
	LabelXY = "xy"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// tags is a reference-typed label used to exercise shared-label semantics.
type tags map[string]struct{}

// NewStringGraph returns a Graph with string vertices and string labels.
func NewStringGraph(opts ...core.GraphOption) *core.Graph[string, string] {
	return core.NewGraph[string, string](opts...)
}

// NewChain returns the undirected chain A–B–C–D labelled LabelAB, LabelBC, LabelCD.
func NewChain(t *testing.T) *core.Graph[string, string] {
	t.Helper()

	g := NewStringGraph()
	MustNoError(t, g.AddUndirected(VertexA, VertexB, LabelAB), "AddUndirected(A,B)")
	MustNoError(t, g.AddUndirected(VertexB, VertexC, LabelBC), "AddUndirected(B,C)")
	MustNoError(t, g.AddUndirected(VertexC, VertexD, LabelCD), "AddUndirected(C,D)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
// Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}
