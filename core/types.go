package core

import (
	"sync"

	"github.com/abarankab/parallel-boruvka/parray"
)

// Edge is a directed record (From, To, Weight). The driver's input
// multiset is symmetric: every undirected edge {u,v,w} is materialized
// as two Edge values (u,v,w) and (v,u,w). Edges compare lexicographically
// by (From, To, Weight); this is the sort order Finalize establishes and
// every Borůvka round re-establishes before the next one.
type Edge struct {
	From   uint32
	To     uint32
	Weight uint32
}

// Less reports whether e sorts before other under the (From, To, Weight)
// lexicographic order the driver's Phase 2 fast path relies on.
func (e Edge) Less(other Edge) bool {
	if e.From != other.From {
		return e.From < other.From
	}
	if e.To != other.To {
		return e.To < other.To
	}
	return e.Weight < other.Weight
}

// Graph holds a node-id range [0, numNodes) and a symmetric edge
// multiset. It is built once through AddEdge calls guarded by mu, then
// sealed by Finalize, after which Nodes and Edges are read-only for the
// rest of the Graph's lifetime — CalculateMST only reads both arrays and
// builds its per-round arrays separately.
type Graph struct {
	mu sync.Mutex

	numNodes    uint32
	buildWorker int
	finalized   bool
	building    []Edge

	nodes parray.Array[uint32]
	edges parray.Array[Edge]
}
