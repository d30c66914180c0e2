// SPDX-License-Identifier: MIT

package bfs

import "fmt"

// PathTo reconstructs the shortest path from t's root to target by walking
// child→parent edges back to the root.
//
// The result starts at the root and ends at target; PathTo(t, t.Root())
// is the single-element path [root].
//
// Returns ErrEmptyTree when t is nil or has no vertices, and ErrUnreachable
// when target is not part of t.
//
// Complexity: O(depth(target)).
func PathTo[V comparable](t *Tree[V], target V) ([]V, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTree
	}
	if !t.Contains(target) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	d, _ := t.Depth(target)
	path := make([]V, d+1)
	cur := target
	for i := d; ; i-- {
		path[i] = cur
		parent, ok := t.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}

	return path, nil
}

// PathTo is the method form of the package-level PathTo.
func (t *Tree[V]) PathTo(target V) ([]V, error) {
	return PathTo(t, target)
}
