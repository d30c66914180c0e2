// SPDX-License-Identifier: MIT
//
// Package builder turns raw co-membership records into a labelled co-star
// graph.
//
// Input is a Records value: id→name tables for entities (actors) and groups
// (movies) plus the membership relation. Build produces a
// core.Graph[string, Credits] where:
//
//   - every entity name is a vertex, isolated entities included;
//   - two entities sharing at least one group are joined by ONE undirected
//     edge;
//   - the edge label (Credits) is the set of all group names they share,
//     accumulated in place through the graph's shared-label invariant.
//
// Error policy:
//
//   - Memberships that reference an unknown group or entity are skipped and
//     reported (Report.Skipped, Report.Err joins them).
//   - WithStrict turns the first skip into a build failure (ErrStrict).
//   - A nil *Records yields ErrNilRecords. Build never panics.
//
// Options:
//
//	WithStrict()          fail instead of skipping
//	WithLogger(l)         structured progress and skip logging
//	WithCapacity(n)       pre-size the vertex catalog
//
// Determinism: vertices are inserted in name order and groups processed in
// name order, so neighbor order in the result depends only on the input.
//
// Complexity: O(M + Σ_g k_g²) time for M memberships and k_g members in
// group g; O(V + E) memory.
package builder
