// SPDX-License-Identifier: MIT

// Package universe plays the "center of the universe" game over a built
// co-star graph.
//
// A Universe keeps one current center and its BFS tree. Queries answer
// relative to that center:
//
//	SetCenter(name)        move the center, summarize reachability
//	Path(name)             separation number and the credits of each hop
//	Infinite()             vertices with infinite separation
//	Separation(low, high)  vertices by separation range
//	Degree(low, high)      vertices by co-star count range
//	Centers(ctx, k)        top (k<0) or bottom (k>0) centers by average separation
//
// Path distinguishes an unknown name (core.ErrVertexNotFound) from a known
// but disconnected one (bfs.ErrUnreachable).
package universe
