package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
)

// ExampleBFS_shortestHops finds the fewest-hop route in a small network.
// Two routes exist from "A" to "K": A-B-C-D-K and A-E-F-K.
func ExampleBFS_shortestHops() {
	g := core.NewGraph(1,
		[]string{"A", "B", "C", "D", "E", "F", "K"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 1},
			{From: "C", To: "D", Weight: 1},
			{From: "D", To: "K", Weight: 1},
			{From: "A", To: "E", Weight: 5},
			{From: "E", To: "F", Weight: 5},
			{From: "F", To: "K", Weight: 5},
		})

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println(res.Order)
	fmt.Println(path)
	// Output:
	// [A B E C F D K]
	// [A E F K]
}
