// File: basecase.go
// Role: bounded partial Dijkstra (C4) — BMSSP's base case at recursion
// level 0.
package basecase

import (
	"math"

	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/heap"
)

// Run performs a bounded Dijkstra search from x: it settles vertices in
// increasing distance order until either the frontier's distance
// reaches bound, or k+1 vertices have been settled, whichever comes
// first. dist[x] is promoted from +Inf to 0 only if it was still +Inf —
// a recursive caller may invoke Run with x already carrying a finite
// tentative distance from an outer frame, which Run must not disturb.
//
// Run mutates state in place (tightening dist, overwriting pred on
// every admissible relaxation, including ties — see the note on pred
// below) and returns the settled vertex ids in the order
// they were finalized, plus B', the distance threshold the caller
// should treat as "everything below this is done".
//
// pred[v] is overwritten whenever alt <= dist[v], not only when alt is
// strictly smaller. This can leave pred pointing along a different
// shortest-path tree than the one dist itself realizes; replicated
// verbatim from the reference algorithm's tie-handling, which the
// module's test suite assumes.
//
// Complexity: O(n) to allocate the heap's position index over all n
// vertices, plus O((|U| + |relaxed|) log n).
func Run(g *core.Graph, bound float64, x int, state *core.DistState, k int) (float64, []int) {
	bPrime := bound
	u := make([]int, 0)
	if !g.HasVertex(x) {
		return bPrime, u
	}

	h := heap.New(g.NumVertices())
	if math.IsInf(state.Get(x), 1) {
		state.Set(x, 0)
	}
	h.Insert(x, state.Get(x))

	inU := make(map[int]bool)
	for !h.Empty() && len(inU) < k+1 {
		v, dv, _ := h.ExtractMin()
		if dv >= bound {
			bPrime = bound

			break
		}
		if !inU[v] {
			inU[v] = true
			u = append(u, v)
		}

		for _, e := range g.OutEdges(v) {
			alt := dv + e.Weight
			cur := state.Get(e.To)
			if alt > bound || alt > cur {
				continue
			}
			if alt < cur {
				state.Set(e.To, alt)
			}
			state.SetPred(e.To, v)
			h.Insert(e.To, alt)
		}
	}

	if len(inU) >= k+1 && len(u) > 0 {
		bPrime = state.Get(u[len(u)-1])
	}

	return bPrime, u
}
