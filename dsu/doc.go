// Package dsu implements a lock-free disjoint-set union over a fixed
// range of node ids [0, n), the concurrent union-find the parallel
// Borůvka driver commits its per-round merges through.
//
// Each node owns one atomic.Uint64 word packed as (rank, parent) via
// core.Pack, so every update to a node's parent or rank is a single CAS.
// FindRoot performs path halving on every step; Unite biases merges by
// rank and breaks rank ties by id, retrying from scratch on a losing
// CAS. All three operations — FindRoot, SameSet, Unite — are safe to
// call concurrently from any number of goroutines; none of them take a
// lock.
package dsu
