package pivot_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/pivot"
	"github.com/stretchr/testify/require"
)

// TestFindPivots_Star replicates the literal end-to-end scenario: center
// 0, leaves 1..5 with forward weight i from the center.
// FindPivots(G, 10.0, {0}, 1, dist) returns W of size 6.
func TestFindPivots_Star(t *testing.T) {
	g := core.NewGraph(6)
	for i := 1; i <= 5; i++ {
		require.NoError(t, g.AddEdge(0, i, float64(i)))
		require.NoError(t, g.AddEdge(i, 0, float64(i)*0.5))
	}

	state := core.NewDistState(6)
	state.Set(0, 0)

	_, w := pivot.FindPivots(g, 10.0, []int{0}, 1, state)
	require.Len(t, w, 6)
}

// TestFindPivots_EarlyTermination replicates the literal end-to-end
// scenario: a complete digraph on 10 vertices with unit weights.
// FindPivots(G, 10.0, {0}, 2, dist) returns P = {0}.
func TestFindPivots_EarlyTermination(t *testing.T) {
	const n = 10
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				require.NoError(t, g.AddEdge(u, v, 1))
			}
		}
	}

	state := core.NewDistState(n)
	state.Set(0, 0)

	p, _ := pivot.FindPivots(g, 10.0, []int{0}, 2, state)
	require.Equal(t, []int{0}, p)
}

// TestFindPivots_SubtreeSizeSelectsPivot exercises the non-early-exit
// path: two sources, one growing a relaxation chain of size >= k (and
// so becoming a pivot), the other isolated (too small a subtree, stays
// out of P). Also verifies state is tightened for every discovered
// vertex.
func TestFindPivots_SubtreeSizeSelectsPivot(t *testing.T) {
	g := core.NewGraph(6)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	state := core.NewDistState(6)
	state.Set(0, 0)
	state.Set(5, 0)

	p, w := pivot.FindPivots(g, 100, []int{0, 5}, 2, state)

	require.Equal(t, []int{0}, p)
	require.ElementsMatch(t, []int{0, 1, 2, 5}, w)
	require.Equal(t, 1.0, state.Get(1))
	require.Equal(t, 2.0, state.Get(2))
}

// TestFindPivots_NeverIncreasesDistance verifies the postcondition that
// state's distances are only ever tightened, never increased, even when
// a vertex reached by the relaxation (here 1, outside S) already carries
// a smaller distance than what local relaxation would propose.
func TestFindPivots_NeverIncreasesDistance(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 5))

	state := core.NewDistState(3)
	state.Set(0, 0)
	state.Set(1, 1) // already better than the 5 the relaxation would find

	_, w := pivot.FindPivots(g, 100, []int{0}, 3, state)

	require.Contains(t, w, 1)
	require.Equal(t, 1.0, state.Get(1))
}

// TestFindPivots_BoundExcludesFarVertices verifies relaxed distances
// at or beyond bound never enter W.
func TestFindPivots_BoundExcludesFarVertices(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 10))

	state := core.NewDistState(3)
	state.Set(0, 0)

	_, w := pivot.FindPivots(g, 5, []int{0}, 3, state)
	require.NotContains(t, w, 1)
	require.True(t, math.IsInf(state.Get(1), 1))
}

// TestFindPivots_EmptyPivotsFallBackToS verifies that when no root's
// subtree reaches size k, P falls back to S.
func TestFindPivots_EmptyPivotsFallBackToS(t *testing.T) {
	g := core.NewGraph(3) // no edges: every source's subtree has size 1
	state := core.NewDistState(3)
	state.Set(0, 0)
	state.Set(1, 0)

	p, _ := pivot.FindPivots(g, 100, []int{0, 1}, 5, state)
	require.ElementsMatch(t, []int{0, 1}, p)
}
