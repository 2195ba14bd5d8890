package parray

import (
	"fmt"

	"github.com/abarankab/parallel-boruvka/workpool"
)

// Array is a fixed-size, index-addressable container. It is sized once by
// New and never grows or shrinks; every index read/write is O(1) and
// bounds-checked. It is the Go counterpart of the reference engine's
// ParallelArray<T>: a single owner holds the backing storage for the
// Array's whole lifetime, and Swap exchanges two Arrays in O(1) by
// exchanging their backing slices rather than copying elements.
type Array[T any] struct {
	data []T
}

// New allocates an Array of the given size. Every element is the zero
// value of T until written.
func New[T any](size int) Array[T] {
	if size < 0 {
		panic(fmt.Sprintf("parray: negative size %d", size))
	}
	return Array[T]{data: make([]T, size)}
}

// FromSlice wraps an existing slice without copying it. The caller must
// not retain another reference that mutates the slice's length (append
// may reallocate); Array assumes ownership of the backing array.
func FromSlice[T any](s []T) Array[T] {
	return Array[T]{data: s}
}

// Len returns the Array's fixed size.
func (a Array[T]) Len() int {
	return len(a.data)
}

// Get returns the element at index i. It panics if i is out of range,
// exactly like the reference ParallelArray<T>::operator[]'s bounds check —
// Go has no separate debug build, so this check is unconditional.
func (a Array[T]) Get(i int) T {
	return a.data[i]
}

// Set writes value at index i. It panics if i is out of range.
func (a Array[T]) Set(i int, value T) {
	a.data[i] = value
}

// Slice exposes the backing storage for callers that need direct slice
// operations (range loops, passing to workpool.Pool.Sort's swap/less
// closures). Mutating the returned slice mutates the Array.
func (a Array[T]) Slice() []T {
	return a.data
}

// Swap exchanges the backing storage of a and b in O(1). Swapping an
// Array with itself is a programming error and panics, mirroring the
// reference ParallelArray<T>::swap's self-swap guard.
func (a *Array[T]) Swap(b *Array[T]) {
	if a == b {
		panic("parray: swap with self")
	}
	a.data, b.data = b.data, a.data
}

// Fill sets every element to value, in parallel over pool.
func (a Array[T]) Fill(pool workpool.Pool, value T) {
	pool.RunIndexed(a.Len(), func(i int) {
		a.data[i] = value
	})
}

// ForEachRange partitions the Array into contiguous worker-owned ranges
// and invokes fn(lo, hi) for each range concurrently, then waits for all
// workers to finish — the parallel-partitioning-by-contiguous-index-range
// contract every Borůvka phase relies on.
func (a Array[T]) ForEachRange(pool workpool.Pool, fn func(lo, hi int)) {
	pool.RunRange(a.Len(), fn)
}

// Clone returns an independent copy of a, populated in parallel over pool.
func (a Array[T]) Clone(pool workpool.Pool) Array[T] {
	out := New[T](a.Len())
	pool.RunIndexed(a.Len(), func(i int) {
		out.data[i] = a.data[i]
	})
	return out
}
