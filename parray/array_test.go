package parray_test

import (
	"sync/atomic"
	"testing"

	"github.com/abarankab/parallel-boruvka/parray"
	"github.com/abarankab/parallel-boruvka/workpool"
	"github.com/stretchr/testify/require"
)

func TestNewZeroValue(t *testing.T) {
	a := parray.New[int](5)
	require.Equal(t, 5, a.Len())
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, 0, a.Get(i))
	}
}

func TestGetSet(t *testing.T) {
	a := parray.New[string](3)
	a.Set(0, "x")
	a.Set(2, "z")
	require.Equal(t, "x", a.Get(0))
	require.Equal(t, "", a.Get(1))
	require.Equal(t, "z", a.Get(2))
}

func TestGetOutOfRangePanics(t *testing.T) {
	a := parray.New[int](2)
	require.Panics(t, func() { a.Get(2) })
}

func TestSwapExchangesBackingStorage(t *testing.T) {
	a := parray.New[int](2)
	b := parray.New[int](3)
	a.Set(0, 1)
	b.Set(0, 9)

	a.Swap(&b)

	require.Equal(t, 3, a.Len())
	require.Equal(t, 9, a.Get(0))
	require.Equal(t, 2, b.Len())
	require.Equal(t, 1, b.Get(0))
}

func TestSwapWithSelfPanics(t *testing.T) {
	a := parray.New[int](1)
	require.Panics(t, func() { a.Swap(&a) })
}

func TestFillSetsEveryElement(t *testing.T) {
	a := parray.New[int](1000)
	a.Fill(workpool.New(8), 7)
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, 7, a.Get(i))
	}
}

func TestForEachRangeCoversEveryIndexOnce(t *testing.T) {
	const n = 5000
	a := parray.New[int32](n)
	pool := workpool.New(16)

	a.ForEachRange(pool, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&a.Slice()[i], 1)
		}
	})

	for i := 0; i < n; i++ {
		require.Equal(t, int32(1), a.Get(i))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := parray.New[int](10)
	for i := 0; i < a.Len(); i++ {
		a.Set(i, i*i)
	}

	b := a.Clone(workpool.New(4))
	b.Set(0, -1)

	require.Equal(t, 0, a.Get(0))
	require.Equal(t, -1, b.Get(0))
	for i := 1; i < a.Len(); i++ {
		require.Equal(t, i*i, b.Get(i))
	}
}

func TestFromSliceWrapsWithoutCopy(t *testing.T) {
	s := []int{1, 2, 3}
	a := parray.FromSlice(s)
	a.Set(0, 99)
	require.Equal(t, 99, s[0])
}
