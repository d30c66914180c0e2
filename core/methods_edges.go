// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddDirected/AddUndirected/HasEdge/Label/UpdateLabel/
//       Edge/Edges/EdgeCount, plus the record bookkeeping helpers.
// Determinism:
//   - Edges() returns records sorted by Edge.ID asc (creation order).
//   - Edge IDs are a monotonic counter; no randomness, no time.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddDirected creates or overwrites the single edge from→to with label.
//
// Steps:
//  1. Reject self-loops unless WithLoops was given.
//  2. Register missing endpoints.
//  3. Detach any existing from→to reference (an undirected record keeps
//     serving to→from as a directed record).
//  4. Store a new directed record and link out[from][to], in[to][from].
//
// Errors:
//   - ErrLoopNotAllowed: from == to on a graph without WithLoops.
//
// Complexity: O(1) amortized.
func (g *Graph[V, L]) AddDirected(from, to V, label L) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddDirected(%v,%v): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.detachLocked(from, to)

	e := g.newEdgeLocked(from, to, label, true)
	g.out[from][to] = e.ID
	g.in[to][from] = e.ID

	return nil
}

// AddUndirected creates or overwrites the symmetric edge a–b with label.
//
// Both directions reference ONE record, so the label is shared: an
// UpdateLabel through a→b is observed through b→a and vice versa.
// A self pair (a == b) is a silent no-op: undirected self-loops are never stored.
//
// Complexity: O(1) amortized.
func (g *Graph[V, L]) AddUndirected(a, b V, label L) error {
	if a == b {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(a)
	g.addVertexLocked(b)
	g.detachLocked(a, b)
	g.detachLocked(b, a)

	e := g.newEdgeLocked(a, b, label, false)
	g.out[a][b] = e.ID
	g.out[b][a] = e.ID
	g.in[b][a] = e.ID
	g.in[a][b] = e.ID

	return nil
}

// HasEdge reports whether from→to exists (undirected edges answer both ways).
// Unknown vertices simply yield false.
// Complexity: O(1).
func (g *Graph[V, L]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// Label returns the label of from→to.
//
// Errors:
//   - ErrEdgeNotFound: no from→to edge; the zero L is returned.
//
// Complexity: O(1).
func (g *Graph[V, L]) Label(from, to V) (L, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edgeLocked(from, to)
	if !ok {
		var zero L
		return zero, fmt.Errorf("Label(%v,%v): %w", from, to, ErrEdgeNotFound)
	}

	return e.Label, nil
}

// UpdateLabel replaces the label of from→to with fn(current).
//
// For undirected edges the shared record is updated, so both directions
// observe the new value. fn runs under the write lock and must not call
// back into the graph.
//
// Errors:
//   - ErrNilUpdate: fn is nil.
//   - ErrEdgeNotFound: no from→to edge.
//
// Complexity: O(1) plus the cost of fn.
func (g *Graph[V, L]) UpdateLabel(from, to V, fn func(L) L) error {
	if fn == nil {
		return ErrNilUpdate
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edgeLocked(from, to)
	if !ok {
		return fmt.Errorf("UpdateLabel(%v,%v): %w", from, to, ErrEdgeNotFound)
	}
	e.Label = fn(e.Label)

	return nil
}

// Edge returns the live record serving from→to.
//
// Errors:
//   - ErrEdgeNotFound: no from→to edge.
func (g *Graph[V, L]) Edge(from, to V) (*Edge[V, L], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edgeLocked(from, to)
	if !ok {
		return nil, fmt.Errorf("Edge(%v,%v): %w", from, to, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns all records sorted by Edge.ID asc.
// An undirected edge appears once.
// Complexity: O(E log E).
func (g *Graph[V, L]) Edges() []*Edge[V, L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge[V, L], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of stored records (an undirected edge counts once).
// Complexity: O(1).
func (g *Graph[V, L]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// edgeLocked resolves the record serving from→to; caller holds a lock.
func (g *Graph[V, L]) edgeLocked(from, to V) (*Edge[V, L], bool) {
	id, ok := g.out[from][to]
	if !ok {
		return nil, false
	}
	e, ok := g.edges[id]

	return e, ok
}

// newEdgeLocked issues the next edge ID and catalogs a new record.
func (g *Graph[V, L]) newEdgeLocked(from, to V, label L, directed bool) *Edge[V, L] {
	g.nextEdgeID++
	e := &Edge[V, L]{ID: g.nextEdgeID, From: from, To: to, Label: label, Directed: directed}
	g.edges[e.ID] = e

	return e
}

// detachLocked removes the from→to reference.
//
// A directed record is dropped from the catalog. An undirected record is
// demoted to a directed record serving to→from, which keeps the reverse
// direction and its label intact.
func (g *Graph[V, L]) detachLocked(from, to V) {
	id, ok := g.out[from][to]
	if !ok {
		return
	}
	delete(g.out[from], to)
	delete(g.in[to], from)

	e := g.edges[id]
	if e == nil {
		return
	}
	if e.Directed {
		delete(g.edges, id)
		return
	}
	e.From, e.To, e.Directed = to, from, true
}
