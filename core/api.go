// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: configuration getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount         int  // |V|
	EdgeCount           int  // stored records (undirected counted once)
	DirectedEdgeCount   int  // records serving one direction
	UndirectedEdgeCount int  // records shared by both directions
	IsolatedCount       int  // vertices with no in- or out-edges
	AllowsLoops         bool // WithLoops was given
}

// Looped reports whether directed self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph[V, L]) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a consistent snapshot of configuration and catalog sizes.
//
// Implementation:
//   - Stage 1: Under the read lock, count vertices and classify edge records.
//   - Stage 2: Count vertices whose out and in buckets are both empty.
//
// Complexity: Time O(V+E), Space O(1).
func (g *Graph[V, L]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
	}
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	for _, v := range g.order {
		if len(g.out[v]) == 0 && len(g.in[v]) == 0 {
			stats.IsolatedCount++
		}
	}

	return stats
}
