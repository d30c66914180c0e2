// SPDX-License-Identifier: MIT

package query

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sixdeg/bfs"
	"github.com/katalvlaran/sixdeg/core"
)

// DegreeEntry pairs a vertex with its out-degree.
type DegreeEntry[V comparable] struct {
	Vertex V   `json:"vertex"`
	Degree int `json:"degree"`
}

// SeparationEntry pairs a vertex with its hop distance from the tree root.
type SeparationEntry[V comparable] struct {
	Vertex     V   `json:"vertex"`
	Separation int `json:"separation"`
}

// FilterByDegree returns the vertices of g whose out-degree lies in
// [low, high], ascending by degree. Ties keep g's vertex order.
//
// high < low yields an empty result and ErrInvertedRange.
//
// Complexity: O(V log V).
func FilterByDegree[V comparable, L any](g *core.Graph[V, L], low, high int) ([]DegreeEntry[V], error) {
	out := make([]DegreeEntry[V], 0)
	if g == nil {
		return out, ErrGraphNil
	}
	if high < low {
		return out, fmt.Errorf("%w: [%d, %d]", ErrInvertedRange, low, high)
	}

	for _, v := range g.Vertices() {
		d, err := g.OutDegree(v)
		if err != nil {
			return make([]DegreeEntry[V], 0), fmt.Errorf("query: degree of %v: %w", v, err)
		}
		if d >= low && d <= high {
			out = append(out, DegreeEntry[V]{Vertex: v, Degree: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })

	return out, nil
}

// FilterBySeparation returns the tree's vertices whose BFS depth lies in
// [low, high], ascending by depth. A vertex's depth equals the hop count
// of its PathTo path, so no path is materialized.
// Vertices outside the tree have infinite separation and never match.
//
// high < low yields an empty result and ErrInvertedRange.
//
// Complexity: O(V log V).
func FilterBySeparation[V comparable](tree *bfs.Tree[V], low, high int) ([]SeparationEntry[V], error) {
	out := make([]SeparationEntry[V], 0)
	if tree == nil {
		return out, ErrTreeNil
	}
	if high < low {
		return out, fmt.Errorf("%w: [%d, %d]", ErrInvertedRange, low, high)
	}

	for _, v := range tree.Vertices() {
		d, _ := tree.Depth(v)
		if d >= low && d <= high {
			out = append(out, SeparationEntry[V]{Vertex: v, Separation: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Separation < out[j].Separation })

	return out, nil
}
