// SPDX-License-Identifier: MIT

package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdeg/bfs"
	"github.com/katalvlaran/sixdeg/core"
)

// ExampleBFS builds a small co-star graph and prints every actor's separation.
func ExampleBFS() {
	g := core.NewGraph[string, string]()
	_ = g.AddUndirected("Bacon", "Alice", "Footloose")
	_ = g.AddUndirected("Alice", "Charlie", "Tremors")
	_ = g.AddUndirected("Charlie", "Earl", "Diner")
	g.AddVertex("Hermit")

	tree, err := bfs.BFS(g, "Bacon")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range tree.Vertices() {
		d, _ := tree.Depth(v)
		fmt.Printf("%s=%d\n", v, d)
	}
	fmt.Println("Hermit reached:", tree.Contains("Hermit"))
	// Output:
	// Bacon=0
	// Alice=1
	// Charlie=2
	// Earl=3
	// Hermit reached: false
}

// ExamplePathTo reconstructs a root-first path and reports an unreachable target.
func ExamplePathTo() {
	g := core.NewGraph[string, string]()
	_ = g.AddUndirected("Bacon", "Alice", "Footloose")
	_ = g.AddUndirected("Alice", "Earl", "Diner")
	g.AddVertex("Hermit")

	tree, _ := bfs.BFS(g, "Bacon")
	path, _ := bfs.PathTo(tree, "Earl")
	fmt.Println(path, len(path)-1)

	_, err := bfs.PathTo(tree, "Hermit")
	fmt.Println(errors.Is(err, bfs.ErrUnreachable))
	// Output:
	// [Bacon Alice Earl] 2
	// true
}
