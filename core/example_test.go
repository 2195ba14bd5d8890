package core_test

import (
	"fmt"

	"github.com/abarankab/parallel-boruvka/core"
)

// ExampleGraph_triangle builds a 3-node triangle and prints every edge in
// the finalized, sorted order.
func ExampleGraph_triangle() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 3)

	if err := g.Finalize(); err != nil {
		fmt.Println("error:", err)
		return
	}

	edges := g.Edges()
	for i := 0; i < edges.Len(); i++ {
		e := edges.Get(i)
		fmt.Printf("%d->%d(%d) ", e.From, e.To, e.Weight)
	}
	// Output: 0->1(1) 0->2(3) 1->0(1) 1->2(2) 2->0(3) 2->1(2)
}

func ExampleGraph_emptyFinalizeFails() {
	g := core.NewGraph(0)
	fmt.Println(g.Finalize())
	// Output: core: graph has zero nodes
}
