// Package parallelboruvka is the root of parallel-boruvka, a concurrent
// minimum-spanning-tree engine for shared-memory multicore hardware.
//
// Given an undirected, connected, edge-weighted graph, it computes a
// minimum spanning tree using a parallel variant of Borůvka's algorithm:
// every round, each component's minimum outgoing edge is found
// concurrently across the whole edge list, components are merged
// through a lock-free disjoint-set union, and the surviving edges and
// nodes are compacted via a parallel prefix sum before the next round.
//
// Everything lives under focused subpackages:
//
//	core/     — Edge and Graph types, the packed-word codec, sentinel errors
//	dsu/      — lock-free disjoint-set union (FindRoot, SameSet, Unite)
//	parray/   — generic fixed-size parallel array container
//	workpool/ — fork-join worker pool, parallel sort, parallel prefix sum
//	boruvka/  — the driver: CalculateMST
//
// Quick example:
//
//	g := core.NewGraph(3)
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(0, 2, 3)
//	_ = g.Finalize()
//
//	mst, err := boruvka.CalculateMST(context.Background(), g)
//	// mst has 2 edges, core.TotalWeight(mst) == 3
//
//	go get github.com/abarankab/parallel-boruvka
package parallelboruvka
