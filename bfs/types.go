// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdeg/core"
)

// Sentinel errors for BFS execution and path reconstruction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent from the graph.
	// It signals "no such vertex", as opposed to ErrUnreachable.
	ErrSourceNotFound = errors.New("bfs: source vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrEmptyTree is returned by PathTo on a nil or vertex-less tree.
	ErrEmptyTree = errors.New("bfs: tree is empty")

	// ErrUnreachable is returned by PathTo when the target is not in the tree,
	// i.e. it cannot be reached from the root.
	ErrUnreachable = errors.New("bfs: target not reachable from root")
)

// Unit is the label carried by tree edges.
type Unit = struct{}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters that customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops discovering vertices beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// onVisit runs for each dequeued vertex; a non-nil error aborts BFS.
	onVisit func(v any, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background() and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops discovery beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers fn to run as each vertex is dequeued, root first.
// Returning an error aborts BFS; the error is returned wrapped.
// fn's vertex type must match the graph's; a mismatch aborts with ErrOptionViolation.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnVisit hook is nil", ErrOptionViolation)
			return
		}
		o.onVisit = func(v any, depth int) error {
			typed, ok := v.(V)
			if !ok {
				return fmt.Errorf("%w: OnVisit expects %T, got %T", ErrOptionViolation, typed, v)
			}

			return fn(typed, depth)
		}
	}
}

// Tree is the parent-pointer result of a breadth-first search.
//
// Its graph holds exactly the vertices reachable from the root. Every
// non-root vertex has one outgoing edge pointing to the vertex that
// discovered it (child→parent); the root has out-degree 0. Following
// parent edges from any vertex therefore yields a shortest path back to
// the root in O(1) per step.
type Tree[V comparable] struct {
	root  V
	graph *core.Graph[V, Unit]
	depth map[V]int
}

// Root returns the BFS source.
func (t *Tree[V]) Root() V { return t.root }

// Graph returns the underlying child→parent graph. Treat it as read-only.
func (t *Tree[V]) Graph() *core.Graph[V, Unit] { return t.graph }

// Len returns the number of vertices in the tree (root included).
func (t *Tree[V]) Len() int {
	if t == nil || t.graph == nil {
		return 0
	}

	return t.graph.VertexCount()
}

// Contains reports whether v was reached from the root.
func (t *Tree[V]) Contains(v V) bool {
	if t == nil || t.graph == nil {
		return false
	}

	return t.graph.HasVertex(v)
}

// Vertices returns the reachable vertices in discovery order.
func (t *Tree[V]) Vertices() []V {
	if t == nil || t.graph == nil {
		return nil
	}

	return t.graph.Vertices()
}

// Depth returns the discovery depth of v (root = 0).
func (t *Tree[V]) Depth(v V) (int, bool) {
	if t == nil {
		return 0, false
	}
	d, ok := t.depth[v]

	return d, ok
}

// Parent returns the vertex that discovered v. The root and absent
// vertices report false.
func (t *Tree[V]) Parent(v V) (V, bool) {
	var zero V
	if !t.Contains(v) {
		return zero, false
	}
	parents, err := t.graph.OutNeighbors(v)
	if err != nil || len(parents) == 0 {
		return zero, false
	}

	return parents[0], true
}

// Children returns the vertices discovered from v, in discovery order.
func (t *Tree[V]) Children(v V) []V {
	if !t.Contains(v) {
		return nil
	}
	children, err := t.graph.InNeighbors(v)
	if err != nil {
		return nil
	}

	return children
}
