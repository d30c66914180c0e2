// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sixdeg/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, L any] struct {
	graph   *core.Graph[V, L]
	opts    Options
	ctx     context.Context
	queue   []queueItem[V]
	head    int
	visited map[V]struct{}
	tree    *Tree[V]
}

// BFS runs breadth-first search on g starting from source and returns the
// shortest-path tree of every vertex reachable from source.
//
// The tree's edges point from child to parent with a Unit label. When a
// vertex has several same-distance discoverers, the first one in g's
// neighbor order wins; distances never depend on that choice.
//
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, a wrapped
// OnVisit error, or a wrapped core error if a neighborhood lookup fails.
//
// Complexity: O(V + E) over the reachable component (plus neighbor ordering).
func BFS[V comparable, L any](g *core.Graph[V, L], source V, opts ...Option) (*Tree[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	w := &walker[V, L]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[V]struct{}),
		tree: &Tree[V]{
			root:  source,
			graph: core.NewGraph[V, Unit](),
			depth: make(map[V]int),
		},
	}

	// Seed queue with the source (no parent)
	w.discover(source, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.tree, nil
}

// discover marks v visited at depth d, registers it in the tree and enqueues it.
func (w *walker[V, L]) discover(v V, d int) {
	w.visited[v] = struct{}{}
	w.tree.depth[v] = d
	w.tree.graph.AddVertex(v)
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, L]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeued vertex)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// visit invokes the OnVisit hook, if any.
func (w *walker[V, L]) visit(item queueItem[V]) error {
	if w.opts.onVisit == nil {
		return nil
	}
	if err := w.opts.onVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit(%v): %w", item.v, err)
	}

	return nil
}

// expand discovers every unvisited out-neighbor of item and links it to item.
func (w *walker[V, L]) expand(item queueItem[V]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.OutNeighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.v, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.discover(nbr, next)
		// child→parent; both endpoints exist and differ, so this cannot fail
		if err = w.tree.graph.AddDirected(nbr, item.v, Unit{}); err != nil {
			return fmt.Errorf("bfs: link %v→%v: %w", nbr, item.v, err)
		}
	}

	return nil
}
