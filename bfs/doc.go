// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph, returning a
// parent-pointer Tree of unweighted shortest paths from a source vertex.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a source.
//   - Return a Tree whose graph holds exactly the reachable vertices, with
//     one child→parent edge per non-root vertex.
//   - Reconstruct the root→target shortest path with PathTo.
//   - Honor a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Respect cancellation through WithContext.
//   - Run a per-vertex OnVisit hook that may abort the search.
//
// Why
//
//   - Degrees of separation are hop counts; BFS gives them in O(V + E).
//   - One tree answers every "path from the center to X" query in
//     O(depth(X)) until the center changes.
//
// Determinism
//
//	core.Graph returns neighbors in edge creation order and BFS enqueues
//	them in that order, so the discovery sequence and every parent choice
//	are reproducible for the same build input.
//
// Tree shape
//
//	root            out-degree 0, depth 0
//	v != root       out-degree 1 (its parent), depth = parent depth + 1
//	InNeighbors(v)  the vertices v discovered (its children)
//
// Complexity (V = reachable vertices, E = their incident edges)
//
//   - Time:   O(V + E) plus neighbor ordering in core
//   - Memory: O(V) for the queue, visited set and tree
//
// Usage
//
//	tree, err := bfs.BFS(g, "Kevin Bacon", bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrOptionViolation or ctx.Err()
//	}
//	path, err := bfs.PathTo(tree, "Tom Hanks")
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // not connected to the root
//	}
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrSourceNotFound   if the source vertex does not exist.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrEmptyTree        if PathTo receives a nil or empty tree.
//   - ErrUnreachable      if PathTo's target is not in the tree.
package bfs
