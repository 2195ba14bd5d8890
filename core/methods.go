package core

import (
	"math"

	"github.com/abarankab/parallel-boruvka/parray"
	"github.com/abarankab/parallel-boruvka/workpool"
)

// NewGraph creates an empty Graph over the node-id range [0, numNodes).
// Complexity: O(1).
func NewGraph(numNodes uint32, opts ...GraphOption) *Graph {
	g := &Graph{numNodes: numNodes}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddEdge adds one undirected edge {from, to, weight} to the Graph,
// materializing both orientations (from,to,weight) and (to,from,weight)
// in the eventual Edges array. It returns ErrAlreadyFinalized if the
// Graph has already been sealed by Finalize.
//
// from and to must lie in [0, numNodes); weight must not equal
// math.MaxUint32, the reserved "no edge" sentinel. Both conditions are
// programming errors in the caller and panic rather than returning an
// error, mirroring how the reference engine's building phase treats a
// malformed AddEdge call as an invariant violation, not a data condition.
func (g *Graph) AddEdge(from, to, weight uint32) error {
	if from >= g.numNodes || to >= g.numNodes {
		panic("core: AddEdge node id out of range")
	}
	if weight == math.MaxUint32 {
		panic("core: AddEdge weight equals the reserved sentinel")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finalized {
		return ErrAlreadyFinalized
	}

	g.building = append(g.building, Edge{From: from, To: to, Weight: weight})
	if from != to {
		g.building = append(g.building, Edge{From: to, To: from, Weight: weight})
	}
	return nil
}

// Finalize seals the Graph: it materializes Nodes as [0, numNodes),
// wraps the accumulated edges in a parray.Array[Edge] without copying, sorts that
// array lexicographically by (From, To, Weight), and marks the Graph
// read-only. Finalize is idempotent; calling it twice is a no-op on the
// second call. It returns ErrEmptyGraph if numNodes is zero.
func (g *Graph) Finalize() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finalized {
		return nil
	}
	if g.numNodes == 0 {
		return ErrEmptyGraph
	}

	nodes := parray.New[uint32](int(g.numNodes))
	for i := uint32(0); i < g.numNodes; i++ {
		nodes.Set(int(i), i)
	}

	edges := parray.FromSlice(g.building)
	pool := workpool.New(g.buildWorker)
	slice := edges.Slice()
	pool.Sort(edges.Len(), func(i, j int) bool {
		return slice[i].Less(slice[j])
	}, func(i, j int) {
		slice[i], slice[j] = slice[j], slice[i]
	})

	g.nodes = nodes
	g.edges = edges
	g.building = nil
	g.finalized = true
	return nil
}
