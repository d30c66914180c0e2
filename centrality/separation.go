// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdeg/bfs"
	"github.com/katalvlaran/sixdeg/core"
)

// ErrRootNotInTree is returned when the averaging root is not a tree vertex.
var ErrRootNotInTree = errors.New("centrality: root not in tree")

// ErrTreeNil is returned for a nil tree.
var ErrTreeNil = errors.New("centrality: tree is nil")

// frame is one pending vertex of the descendant walk.
type frame[V comparable] struct {
	v     V
	depth int
}

// AverageSeparation returns the mean depth of root's descendants in tree,
// counting root's children as depth 1. A root without children yields 0.
//
// root is usually tree.Root(), but any tree vertex works and averages over
// its own subtree.
//
// Complexity: O(size of root's subtree).
func AverageSeparation[V comparable](tree *bfs.Tree[V], root V) (float64, error) {
	if tree == nil {
		return 0, ErrTreeNil
	}
	if !tree.Contains(root) {
		return 0, fmt.Errorf("%w: %v", ErrRootNotInTree, root)
	}

	tg := tree.Graph()
	var sum, count int
	stack := []frame[V]{{v: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := tg.InNeighbors(top.v)
		if err != nil {
			return 0, fmt.Errorf("centrality: children of %v: %w", top.v, err)
		}
		for _, c := range children {
			sum += top.depth + 1
			count++
			stack = append(stack, frame[V]{v: c, depth: top.depth + 1})
		}
	}
	if count == 0 {
		return 0, nil
	}

	return float64(sum) / float64(count), nil
}

// AverageSeparationFrom runs a BFS from root over g and averages the
// separation of every vertex it reaches.
func AverageSeparationFrom[V comparable, L any](ctx context.Context, g *core.Graph[V, L], root V) (float64, error) {
	tree, err := bfs.BFS(g, root, bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	return AverageSeparation(tree, root)
}

// VertexChecker is anything that can answer vertex membership, such as a
// core.Graph or a bfs.Tree's graph.
type VertexChecker[V comparable] interface {
	HasVertex(v V) bool
}

// Missing returns the vertices of g absent from sub, in g's vertex order.
// With sub = bfs.BFS(g, s).Graph() these are the vertices unreachable from s.
func Missing[V comparable, L any](g *core.Graph[V, L], sub VertexChecker[V]) []V {
	out := make([]V, 0)
	if g == nil {
		return out
	}
	for _, v := range g.Vertices() {
		if sub == nil || !sub.HasVertex(v) {
			out = append(out, v)
		}
	}

	return out
}
