package core_test

import (
	"fmt"

	"github.com/katalvlaran/treedec/core"
)

// ExampleGraph builds the square with a diagonal and inspects it.
func ExampleGraph() {
	//	1───2
	//	│ ╲ │
	//	4───3
	g := core.NewGraph()
	g.AddEdge("1", "2")
	g.AddEdge("2", "3")
	g.AddEdge("3", "4")
	g.AddEdge("4", "1")
	g.AddEdge("1", "3")

	fmt.Println(g.VertexCount(), g.EdgeCount())
	nbrs, _ := g.NeighborIDs("1")
	fmt.Println(nbrs)
	// Output:
	// 4 5
	// [2 3 4]
}
