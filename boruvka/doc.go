// Package boruvka computes the Minimum Spanning Tree (MST) of an
// undirected, connected, weighted *core.Graph using a parallel Borůvka's
// algorithm: CalculateMST.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is
//     a subset T ⊆ E such that T spans every vertex in V and the sum of
//     weights of edges in T is minimized.
//
//   - Why Borůvka, and why parallel?
//     Borůvka's algorithm finds, for every current component, its minimum
//     outgoing edge, merges along all of those edges simultaneously, and
//     repeats. Because every component's minimum edge is independent of
//     every other component's, the per-round work is embarrassingly
//     parallel; this package exploits that to drive the whole computation
//     from a fork-join worker pool instead of a single-threaded
//     sort-and-union or heap expansion.
//
// Algorithm
//
//   - Strategy: seed one atomic "best edge" cell per live node; scan the
//     edge list once per round, publishing each node's minimum outgoing
//     edge with a lock-free CAS; select exactly one edge per mutual-minimum
//     pair and commit the merge into a lock-free disjoint-set union;
//     compact the surviving edges and nodes with a parallel prefix sum;
//     re-sort; repeat until one component remains.
//
//   - Complexity: O((N + M) log N) total work, O(log² N) span, across
//     O(log N) rounds — each round at least halves the live component
//     count.
//
//   - Determinism: the total MST weight is identical across any worker
//     count and across repeated runs on the same input; the specific edge
//     chosen among weight ties is not.
//
// Error Conditions
//
//	CalculateMST returns a sentinel error rather than panicking for data
//	conditions a caller should branch on:
//
//	- core.ErrNotFinalized
//	    - graph has not been sealed with Graph.Finalize().
//	- ErrDisconnected
//	    - the round-cap safety valve tripped before every component merged,
//	      which only happens if the input graph was not actually connected.
//
//	Out-of-range node ids and other malformed input are programming errors
//	and panic instead, mirroring how dsu.DSU and parray.Array[T] treat the
//	same class of mistake.
//
// For worked examples, see example_test.go in this package.
package boruvka
