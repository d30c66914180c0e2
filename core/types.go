// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/edge/graph types, construction options, sentinel errors and NewGraph.
// Concurrency:
//   - One sync.RWMutex guards the vertex catalog, the edge catalog and both adjacency indices.
//   - Mutators take the write lock; every query takes the read lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a directed self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilUpdate indicates UpdateLabel was called with a nil update function.
	ErrNilUpdate = errors.New("core: label update function is nil")
)

// Edge is one stored connection record.
//
// An undirected edge is a single record referenced from both adjacency
// directions; From/To keep the endpoint order of the insertion call.
// Records returned by queries are live and must be treated as read-only:
// label changes go through Graph.UpdateLabel.
type Edge[V comparable, L any] struct {
	// ID is the monotonic creation sequence of this record (1, 2, ...).
	ID uint64

	// From is the first endpoint (the source for directed records).
	From V

	// To is the second endpoint (the target for directed records).
	To V

	// Label is the value attached to the connection.
	Label L

	// Directed reports whether the record serves From→To only.
	Directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	allowLoops bool
	capacity   int
}

// WithLoops permits directed self-loops (AddDirected(v, v, ...)).
// Undirected self-loops are never stored.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithCapacity pre-sizes the vertex catalog and adjacency indices for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is a generic in-memory labelled graph.
//
// Vertices are any comparable values; every edge carries a label of type L.
// Directed and undirected edges can be mixed freely in one instance.
//
// Storage:
//
//	edges[id]     = *Edge            (edge catalog, one record per connection)
//	out[u][v]     = id               (u→v exists iff out[u] has key v)
//	in[v][u]      = id               (reverse index for InNeighbors/InDegree)
//
// An undirected u–v edge stores the same id under out[u][v], out[v][u],
// in[v][u] and in[u][v], so its label is shared by both directions.
type Graph[V comparable, L any] struct {
	mu sync.RWMutex

	allowLoops bool

	nextEdgeID uint64 // last issued edge ID, guarded by mu

	order    []V          // vertices in insertion order
	vertices map[V]int    // vertex → index in order
	edges    map[uint64]*Edge[V, L]
	out      map[V]map[V]uint64
	in       map[V]map[V]uint64
}

// NewGraph creates an empty Graph configured by opts.
// By default self-loops are rejected.
// Complexity: O(1) plus the requested capacity.
func NewGraph[V comparable, L any](opts ...GraphOption) *Graph[V, L] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, L]{
		allowLoops: cfg.allowLoops,
		order:      make([]V, 0, cfg.capacity),
		vertices:   make(map[V]int, cfg.capacity),
		edges:      make(map[uint64]*Edge[V, L]),
		out:        make(map[V]map[V]uint64, cfg.capacity),
		in:         make(map[V]map[V]uint64, cfg.capacity),
	}
}
