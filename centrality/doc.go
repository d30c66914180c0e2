// SPDX-License-Identifier: MIT
//
// Package centrality measures how central a vertex is in an unweighted
// graph through its average degree of separation.
//
//	AverageSeparation(tree, root)        mean depth of root's descendants
//	AverageSeparationFrom(ctx, g, root)  BFS from root, then the above
//	Missing(g, sub)                      vertices of g absent from sub
//	Cache                                per-root memo of AverageSeparationFrom
//
// A lower average separation means a more central vertex. An isolated
// vertex, or any root without descendants, has average 0.
//
// Errors:
//
//	ErrTreeNil        – nil tree
//	ErrRootNotInTree  – averaging root absent from the tree
//	ErrGraphNil       – NewCache on a nil graph
//
// BFS errors (bfs.ErrSourceNotFound, context errors) pass through wrapped.
package centrality
