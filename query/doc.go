// SPDX-License-Identifier: MIT
//
// Package query answers range and ranking questions over a built graph and
// a BFS tree rooted at the current center. Nothing here mutates its inputs;
// every call returns freshly allocated results.
//
// Operations:
//
//	FilterByDegree(g, low, high)       out-degree in [low, high], ascending
//	FilterBySeparation(tree, low, high) hop distance in [low, high], ascending
//	RankCenters(ctx, g, opts...)       all vertices by average separation
//	SelectCenters(ranked, k)           k<0 front |k|, k>0 back k
//	Best / Worst                        unsigned helpers over SelectCenters
//
// Ranking runs one BFS per vertex, O(V·(V+E)). WithCache reuses a
// centrality.Cache across calls on the same immutable graph, and
// WithWorkers spreads the BFS runs over several goroutines.
//
// Errors:
//
//	ErrInvertedRange   high < low; the result is empty, not nil
//	ErrRankOutOfRange  |k| larger than the ranked list
//	ErrOptionViolation bad RankOption (workers < 1, foreign cache)
//	ErrGraphNil, ErrTreeNil
package query
