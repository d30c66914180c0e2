// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - AddVertex under the write lock; queries under the read lock.

package core

// AddVertex inserts v if missing (idempotent).
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: If v is new, append it to the insertion order and bootstrap
//     its adjacency buckets so isolated vertices are fully registered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V, L]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked registers v; caller holds the write lock.
func (g *Graph[V, L]) addVertexLocked(v V) {
	if _, exists := g.vertices[v]; exists {
		return // no-op for existing vertex
	}
	g.vertices[v] = len(g.order)
	g.order = append(g.order, v)
	g.out[v] = make(map[V]uint64)
	g.in[v] = make(map[V]uint64)
}

// HasVertex reports whether v is in the vertex catalog.
// Complexity: O(1).
func (g *Graph[V, L]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// Vertices returns all vertices in insertion order.
//
// The returned slice is a fresh copy and may be retained by the caller.
// Complexity: Time O(V), Space O(V).
func (g *Graph[V, L]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Prefer it over len(Vertices()) to avoid the copy.
// Complexity: O(1).
func (g *Graph[V, L]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
