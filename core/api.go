package core

import "github.com/abarankab/parallel-boruvka/parray"

// NumNodes returns the Graph's fixed node-id range size.
func (g *Graph) NumNodes() uint32 {
	return g.numNodes
}

// IsFinalized reports whether Finalize has been called.
func (g *Graph) IsFinalized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finalized
}

// Nodes returns the Graph's current live-node array. It panics if the
// Graph has not been finalized; there is nothing to return during the
// building phase.
func (g *Graph) Nodes() parray.Array[uint32] {
	if !g.finalized {
		panic("core: Nodes called before Finalize")
	}
	return g.nodes
}

// Edges returns the Graph's current edge array. It panics if the Graph
// has not been finalized.
func (g *Graph) Edges() parray.Array[Edge] {
	if !g.finalized {
		panic("core: Edges called before Finalize")
	}
	return g.edges
}

// TotalWeight sums the weights of every edge in edges. Consumers of
// CalculateMST's result typically call this to obtain the MST weight.
func TotalWeight(edges parray.Array[Edge]) uint64 {
	var total uint64
	for i := 0; i < edges.Len(); i++ {
		total += uint64(edges.Get(i).Weight)
	}
	return total
}
