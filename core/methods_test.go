package core_test

import (
	"math"
	"testing"

	"github.com/abarankab/parallel-boruvka/core"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeMaterializesBothOrientations(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.Finalize())

	edges := g.Edges()
	require.Equal(t, 2, edges.Len())

	seen := map[[2]uint32]bool{}
	for i := 0; i < edges.Len(); i++ {
		e := edges.Get(i)
		require.Equal(t, uint32(7), e.Weight)
		seen[[2]uint32{e.From, e.To}] = true
	}
	require.True(t, seen[[2]uint32{0, 1}])
	require.True(t, seen[[2]uint32{1, 0}])
}

func TestAddEdgeSelfLoopMaterializesOnce(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 0, 3))
	require.NoError(t, g.Finalize())
	require.Equal(t, 1, g.Edges().Len())
}

func TestAddEdgeAfterFinalizeFails(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.Finalize())

	err := g.AddEdge(0, 1, 2)
	require.ErrorIs(t, err, core.ErrAlreadyFinalized)
}

func TestAddEdgeOutOfRangePanics(t *testing.T) {
	g := core.NewGraph(2)
	require.Panics(t, func() { _ = g.AddEdge(0, 2, 1) })
}

func TestAddEdgeSentinelWeightPanics(t *testing.T) {
	g := core.NewGraph(2)
	require.Panics(t, func() { _ = g.AddEdge(0, 1, math.MaxUint32) })
}

func TestFinalizeZeroNodesReturnsErrEmptyGraph(t *testing.T) {
	g := core.NewGraph(0)
	require.ErrorIs(t, g.Finalize(), core.ErrEmptyGraph)
}

func TestFinalizeSortsEdgesLexicographically(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(2, 3, 9))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.Finalize())

	edges := g.Edges()
	for i := 1; i < edges.Len(); i++ {
		require.False(t, edges.Get(i).Less(edges.Get(i-1)))
	}
}

func TestFinalizeIsIdempotent(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.Finalize())
	require.NoError(t, g.Finalize())
	require.Equal(t, 2, g.Edges().Len())
}

func TestNodesAndEdgesBeforeFinalizePanic(t *testing.T) {
	g := core.NewGraph(2)
	require.Panics(t, func() { g.Nodes() })
	require.Panics(t, func() { g.Edges() })
}

func TestTotalWeightSumsAllEdges(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 6))
	require.NoError(t, g.Finalize())

	require.Equal(t, uint64(20), core.TotalWeight(g.Edges()))
}
