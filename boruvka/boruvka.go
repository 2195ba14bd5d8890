package boruvka

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/abarankab/parallel-boruvka/core"
	"github.com/abarankab/parallel-boruvka/dsu"
	"github.com/abarankab/parallel-boruvka/parray"
	"github.com/abarankab/parallel-boruvka/workpool"
)

// CalculateMST computes the Minimum Spanning Tree of graph using a
// parallel Borůvka's algorithm and returns its edges, of length
// graph.NumNodes()-1 on success.
//
// graph must already be finalized (core.Graph.Finalize) with a
// connected, symmetric edge multiset; CalculateMST returns
// core.ErrNotFinalized otherwise. graph itself is read, never mutated:
// CalculateMST is safe to call more than once on the same Graph, and
// each call starts over from graph's original Nodes/Edges. ctx is
// checked once per round boundary — cancelling it aborts the
// computation between rounds, not mid-round.
//
// Steps per round:
//  1. Seed one atomic min-edge cell per live node.
//  2. Publish each node's minimum outgoing edge with a lock-free CAS.
//  3. Select one edge per mutual-minimum pair and commit the merge
//     into the disjoint-set union.
//  4. Append newly selected edges to the MST via a parallel prefix sum.
//  5. Compact surviving edges and nodes, relabel by DSU root, and
//     re-sort for the next round.
func CalculateMST(ctx context.Context, graph *core.Graph, opts ...Option) (parray.Array[core.Edge], error) {
	if !graph.IsFinalized() {
		return parray.Array[core.Edge]{}, core.ErrNotFinalized
	}

	n0 := graph.NumNodes()
	cfg := defaultConfig(n0)
	for _, opt := range opts {
		opt(&cfg)
	}
	pool := workpool.New(cfg.workers)

	mst := parray.New[core.Edge](maxInt(int(n0)-1, 0))
	mstSize := 0

	d := dsu.New(n0)
	nodes := graph.Nodes()
	edges := graph.Edges()

	for round := 0; nodes.Len() > 1; round++ {
		if round >= cfg.roundCap {
			return parray.Array[core.Edge]{}, ErrDisconnected
		}
		if err := ctx.Err(); err != nil {
			return parray.Array[core.Edge]{}, err
		}

		var err error
		nodes, edges, mstSize, err = runRound(pool, d, n0, nodes, edges, mst, mstSize)
		if err != nil {
			return parray.Array[core.Edge]{}, err
		}
	}

	return mst, nil
}

// runRound executes the five phases of one Borůvka round and returns the
// compacted (nodes, edges) for the next round along with the updated
// mstSize.
func runRound(
	pool workpool.Pool,
	d *dsu.DSU,
	n0 uint32,
	nodes parray.Array[uint32],
	edges parray.Array[core.Edge],
	mst parray.Array[core.Edge],
	mstSize int,
) (parray.Array[uint32], parray.Array[core.Edge], int, error) {
	nodesSlice := nodes.Slice()
	edgesSlice := edges.Slice()
	m := len(edgesSlice)

	// Phase 1: seed min-edge cells for every live node.
	s := parray.New[atomic.Uint64](int(n0))
	sSlice := s.Slice()
	sentinel := core.Pack(math.MaxUint32, 0)
	pool.RunIndexed(nodes.Len(), func(i int) {
		sSlice[nodesSlice[i]].Store(sentinel)
	})

	// Phase 2: publish each live node's minimum outgoing edge.
	pool.RunRange(m, func(lo, hi int) {
		publishMinEdges(sSlice, edgesSlice, lo, hi)
	})

	// Phase 3: select and commit merges.
	selected := parray.New[uint32](m)
	selSlice := selected.Slice()
	pool.RunIndexed(nodes.Len(), func(i int) {
		u := nodesSlice[i]
		su := sSlice[u].Load()
		if core.Hi(su) == math.MaxUint32 {
			// u has no outgoing edge left this round (every edge incident
			// to it already points within its own component); nothing to
			// merge it with.
			return
		}

		eu := core.Lo(su)
		v := edgesSlice[eu].To
		ev := core.Lo(sSlice[v].Load())
		vPrime := edgesSlice[ev].To

		if vPrime != u || u < v {
			selSlice[eu] = 1
			d.Unite(u, v)
		}
	})

	// Phase 4: append newly selected edges to the MST.
	mstSize = appendSelected(pool, edgesSlice, selSlice, mst, mstSize)

	// Phase 5: compact edges and nodes, relabel by DSU root, re-sort.
	newEdges := compactEdges(pool, d, edgesSlice)
	newNodes := compactNodes(pool, d, nodesSlice)

	newSlice := newEdges.Slice()
	pool.Sort(newEdges.Len(), func(i, j int) bool {
		return newSlice[i].Less(newSlice[j])
	}, func(i, j int) {
		newSlice[i], newSlice[j] = newSlice[j], newSlice[i]
	})

	return newNodes, newEdges, mstSize, nil
}

// publishMinEdges collapses the thread-local minimum outgoing edge for
// each distinct From endpoint in edges[lo:hi] — relying on edges being
// sorted by From, so one worker's contiguous slice sees each From as a
// contiguous run — and publishes it to s with a lock-free CAS loop.
func publishMinEdges(s []atomic.Uint64, edges []core.Edge, lo, hi int) {
	if lo >= hi {
		return
	}

	started := false
	var curFrom uint32
	var bestWeight uint32
	var bestID int

	publish := func() {
		if !started {
			return
		}
		u, w, id := curFrom, bestWeight, uint32(bestID)
		for {
			old := s[u].Load()
			if core.Hi(old) <= w {
				return
			}
			if s[u].CompareAndSwap(old, core.Pack(w, id)) {
				return
			}
		}
	}

	for i := lo; i < hi; i++ {
		e := edges[i]
		switch {
		case !started || e.From != curFrom:
			publish()
			curFrom, bestWeight, bestID, started = e.From, e.Weight, i, true
		case e.Weight < bestWeight:
			bestWeight, bestID = e.Weight, i
		}
	}
	publish()
}

// appendSelected scatters every edge flagged in selected into mst at its
// prefix-summed position and returns the new mstSize.
func appendSelected(pool workpool.Pool, edges []core.Edge, selected []uint32, mst parray.Array[core.Edge], mstSize int) int {
	if len(selected) == 0 {
		return mstSize
	}

	prefix := workpool.PrefixSum(pool, selected)
	pool.RunIndexed(len(edges), func(i int) {
		if selected[i] == 1 {
			mst.Set(mstSize+int(prefix[i])-1, edges[i])
		}
	})
	return mstSize + int(prefix[len(prefix)-1])
}

// compactEdges builds the surviving, relabeled edge array for the next
// round: an edge survives iff its endpoints are not already in the same
// DSU set, and its endpoints are relabeled to their current DSU roots.
func compactEdges(pool workpool.Pool, d *dsu.DSU, edges []core.Edge) parray.Array[core.Edge] {
	if len(edges) == 0 {
		return parray.New[core.Edge](0)
	}

	remain := parray.New[uint32](len(edges)).Slice()
	pool.RunIndexed(len(edges), func(i int) {
		if !d.SameSet(edges[i].From, edges[i].To) {
			remain[i] = 1
		}
	})

	prefix := workpool.PrefixSum(pool, remain)
	out := parray.New[core.Edge](int(prefix[len(prefix)-1]))
	pool.RunIndexed(len(edges), func(i int) {
		if remain[i] == 1 {
			out.Set(int(prefix[i])-1, core.Edge{
				From:   d.FindRoot(edges[i].From),
				To:     d.FindRoot(edges[i].To),
				Weight: edges[i].Weight,
			})
		}
	})
	return out
}

// compactNodes builds the surviving node array for the next round: a
// node survives iff it is still a DSU root.
func compactNodes(pool workpool.Pool, d *dsu.DSU, nodes []uint32) parray.Array[uint32] {
	if len(nodes) == 0 {
		return parray.New[uint32](0)
	}

	remain := parray.New[uint32](len(nodes)).Slice()
	pool.RunIndexed(len(nodes), func(i int) {
		if d.FindRoot(nodes[i]) == nodes[i] {
			remain[i] = 1
		}
	})

	prefix := workpool.PrefixSum(pool, remain)
	out := parray.New[uint32](int(prefix[len(prefix)-1]))
	pool.RunIndexed(len(nodes), func(i int) {
		if remain[i] == 1 {
			out.Set(int(prefix[i])-1, nodes[i])
		}
	})
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
