// SPDX-License-Identifier: MIT
//
// Package core provides a generic, thread-safe, labelled in-memory Graph.
//
// A Graph[V, L] holds vertices of any comparable type V and edges carrying a
// label of type L. Directed and undirected edges live side by side:
//
//   - AddDirected(u, v, l) stores one record serving u→v.
//   - AddUndirected(a, b, l) stores ONE record serving a→b and b→a.
//
// Because an undirected edge is a single record, its label is shared by both
// directions: UpdateLabel through either direction is observed through the
// other. Co-membership graphs rely on this to accumulate every shared group
// of a pair into one label.
//
// Storage (all guarded by one sync.RWMutex):
//
//	edges[id] = *Edge    edge catalog
//	out[u][v] = id       u→v exists iff out[u] has key v
//	in[v][u]  = id       reverse index, keeps InNeighbors O(d)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                               // O(1), idempotent
//	HasVertex(v V) bool                          // O(1)
//	Vertices() []V                               // O(V), insertion order
//	VertexCount() int                            // O(1)
//
//	// Edge lifecycle
//	AddDirected(u, v V, l L) error               // O(1), overwrites u→v
//	AddUndirected(a, b V, l L) error             // O(1), a == b is a no-op
//	HasEdge(u, v V) bool                         // O(1)
//	Label(u, v V) (L, error)                     // O(1)
//	UpdateLabel(u, v V, fn func(L) L) error      // O(1)
//	Edge(u, v V) (*Edge[V, L], error)            // O(1)
//	Edges() []*Edge[V, L]                        // O(E log E), by ID
//	EdgeCount() int                              // O(1)
//
//	// Neighborhoods (ordered by edge creation)
//	OutNeighbors(u V) ([]V, error)               // O(d log d)
//	InNeighbors(u V) ([]V, error)                // O(d log d)
//	OutDegree(u V) (int, error)                  // O(1)
//	InDegree(u V) (int, error)                   // O(1)
//
//	// Diagnostics
//	Stats() GraphStats                           // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound – neighborhood/degree query on a missing vertex
//	ErrEdgeNotFound   – Label/UpdateLabel/Edge on a missing edge
//	ErrLoopNotAllowed – directed self-loop without WithLoops
//	ErrNilUpdate      – UpdateLabel with a nil function
//
// All errors are sentinels wrapped with call context; branch with errors.Is.
package core
