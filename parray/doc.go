// Package parray provides Array[T], a fixed-size, index-addressable
// container built for the fork-join phases of the parallel Borůvka driver.
//
// An Array[T] owns its backing storage for its whole lifetime: it is sized
// once at construction, never grows or shrinks, and every index read/write
// is O(1). Bulk construction (Fill) and bulk copy (Clone) are O(N) and
// parallelize across a workpool.Pool; ForEachRange exposes the same
// contiguous-chunk partitioning to callers with their own per-chunk work.
// Swap exchanges two Array[T]
// values in O(1) by swapping their backing slices, mirroring the
// pointer-swap semantics the reference C++ ParallelArray used for
// round-to-round graph replacement.
//
// Array[T] does not add synchronization of its own: distinct indices can be
// written from distinct goroutines without a race, exactly like a plain Go
// slice, because nothing here re-slices or reallocates after construction.
// Callers that need atomic per-cell updates store an atomic type as T (see
// dsu and boruvka, which store atomic.Uint64 cells).
package parray
