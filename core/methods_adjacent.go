// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (OutNeighbors, InNeighbors, OutDegree, InDegree).
// Determinism:
//   - Neighbor slices are ordered by the ID of the connecting record, i.e. by
//     edge creation order. The order depends only on how the graph was built.
// Concurrency:
//   - Read lock only.

package core

import (
	"fmt"
	"sort"
)

// OutNeighbors returns every v with an edge u→v.
//
// Undirected edges contribute in both directions. The slice is fresh and
// ordered by edge creation.
//
// Errors:
//   - ErrVertexNotFound: u is not in the graph.
//
// Complexity: O(d log d) where d = out-degree of u.
func (g *Graph[V, L]) OutNeighbors(u V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[u]; !ok {
		return nil, fmt.Errorf("OutNeighbors(%v): %w", u, ErrVertexNotFound)
	}

	return orderedKeys(g.out[u]), nil
}

// InNeighbors returns every v with an edge v→u, answered from the reverse
// index so it always agrees with OutNeighbors of the other vertices.
//
// Errors:
//   - ErrVertexNotFound: u is not in the graph.
//
// Complexity: O(d log d) where d = in-degree of u.
func (g *Graph[V, L]) InNeighbors(u V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[u]; !ok {
		return nil, fmt.Errorf("InNeighbors(%v): %w", u, ErrVertexNotFound)
	}

	return orderedKeys(g.in[u]), nil
}

// OutDegree returns |OutNeighbors(u)|.
//
// Errors:
//   - ErrVertexNotFound: u is not in the graph.
//
// Complexity: O(1).
func (g *Graph[V, L]) OutDegree(u V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[u]; !ok {
		return 0, fmt.Errorf("OutDegree(%v): %w", u, ErrVertexNotFound)
	}

	return len(g.out[u]), nil
}

// InDegree returns |InNeighbors(u)|.
//
// Errors:
//   - ErrVertexNotFound: u is not in the graph.
//
// Complexity: O(1).
func (g *Graph[V, L]) InDegree(u V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[u]; !ok {
		return 0, fmt.Errorf("InDegree(%v): %w", u, ErrVertexNotFound)
	}

	return len(g.in[u]), nil
}

// orderedKeys returns the neighbor keys of one adjacency bucket sorted by edge ID.
func orderedKeys[V comparable](bucket map[V]uint64) []V {
	type pair struct {
		v  V
		id uint64
	}
	pairs := make([]pair, 0, len(bucket))
	for v, id := range bucket {
		pairs = append(pairs, pair{v: v, id: id})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].id < pairs[j].id })

	out := make([]V, len(pairs))
	for i := range pairs {
		out[i] = pairs[i].v
	}

	return out
}
