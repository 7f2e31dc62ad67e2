package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmssp/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddEdge_OutOfRange verifies AddEdge rejects vertex ids
// outside [0, n).
//
// Stage 1: Create a 3-vertex graph.
// Stage 2: AddEdge with an out-of-range endpoint returns ErrVertexOutOfRange.
// Stage 3: AddEdge within range succeeds and is visible via OutEdges.
func TestGraph_AddEdge_OutOfRange(t *testing.T) {
	g := core.NewGraph(3)

	err := g.AddEdge(0, 5, 1.0)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	err = g.AddEdge(-1, 1, 1.0)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	err = g.AddEdge(0, 1, 2.5)
	require.NoError(t, err)
	require.Len(t, g.OutEdges(0), 1)
	require.Equal(t, 1, g.OutEdges(0)[0].To)
	require.Equal(t, 2.5, g.OutEdges(0)[0].Weight)
}

// TestGraph_AddEdge_NegativeWeight verifies negative and non-finite
// weights are rejected at the graph boundary, per spec.md §7.
func TestGraph_AddEdge_NegativeWeight(t *testing.T) {
	g := core.NewGraph(2)

	require.ErrorIs(t, g.AddEdge(0, 1, -1.0), core.ErrNegativeWeight)
	require.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrNegativeWeight)
	require.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), core.ErrNegativeWeight)
}

// TestGraph_SelfLoopsAndParallelEdges verifies both are permitted,
// per spec.md §3.
func TestGraph_SelfLoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(2)

	require.NoError(t, g.AddEdge(0, 0, 1.0)) // self-loop
	require.NoError(t, g.AddEdge(0, 1, 2.0))
	require.NoError(t, g.AddEdge(0, 1, 3.0)) // parallel edge, different weight

	require.Len(t, g.OutEdges(0), 3)
}

// TestGraph_OutEdges_StableOrder verifies OutEdges preserves the order
// edges were added, required for deterministic re-runs (spec.md §8).
func TestGraph_OutEdges_StableOrder(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	edges := g.OutEdges(0)
	require.Equal(t, []int{3, 1, 2}, []int{edges[0].To, edges[1].To, edges[2].To})
}

// TestGraph_HasVertex_NumVertices verifies basic accessors on an empty
// and a populated graph.
func TestGraph_HasVertex_NumVertices(t *testing.T) {
	g := core.NewGraph(5)
	require.Equal(t, 5, g.NumVertices())
	require.True(t, g.HasVertex(0))
	require.True(t, g.HasVertex(4))
	require.False(t, g.HasVertex(5))
	require.False(t, g.HasVertex(-1))

	empty := core.NewGraph(0)
	require.Equal(t, 0, empty.NumVertices())
	require.Nil(t, empty.OutEdges(0))
}

// TestGraph_NewGraph_NegativeSizeClampsToZero verifies a negative n is
// clamped rather than panicking, matching the defensive-construction
// style of the teacher's NewGraph.
func TestGraph_NewGraph_NegativeSizeClampsToZero(t *testing.T) {
	g := core.NewGraph(-3)
	require.Equal(t, 0, g.NumVertices())
}
