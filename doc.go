// SPDX-License-Identifier: MIT

// Package sixdeg answers "center of the universe" questions over a
// collaboration graph: who is connected to whom, by how many hops, and
// through which shared groups.
//
// What is sixdeg?
//
//	An in-memory co-star graph engine plus a CLI:
//		• Core primitives: a generic labelled graph whose undirected edges
//		  share one label record between both directions
//		• Builder: entities, groups and memberships → co-star graph
//		• Traversal: BFS shortest-path trees and path reconstruction
//		• Centrality: average separation, unreachable vertices, memoized ranking
//		• Queries: degree and separation range filters, best/worst centers
//		• Universe: a stateful facade around one center (Kevin Bacon by default)
//
// Everything is organized under these subpackages:
//
//	core/       - generic Graph, Edge and thread-safe primitives
//	builder/    - Records → co-star graph with a build Report
//	bfs/        - BFS trees (child→parent edges) and PathTo
//	centrality/ - AverageSeparation, Missing and the singleflight Cache
//	query/      - FilterByDegree, FilterBySeparation, RankCenters
//	universe/   - the center-of-the-universe facade
//	ingest/     - pipe-delimited text and SQLite record sources
//	cmd/sixdeg  - cobra CLI with JSON or --human output
//
// Quick ASCII example:
//
//	Bacon───Alice───Charlie───Earl      Hermit
//	    \    /
//	     Bob
//
//	Earl's separation from Bacon is 3; Hermit's is infinite.
//
//	go install github.com/katalvlaran/sixdeg/cmd/sixdeg@latest
package sixdeg
