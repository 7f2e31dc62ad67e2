// File: pivot.go
// Role: FindPivots (C5) — frontier reduction via bounded relaxation
// rounds and relaxation-forest subtree sizing.
package pivot

import "github.com/katalvlaran/bmssp/core"

// vertexState is FindPivots' local scratch record, distinct from the
// shared core.DistState: distances found here are tentative until the
// final step folds the improved ones back into state (a step the early
// return skips).
type vertexState struct {
	distance    float64
	predecessor int
	hasPred     bool
	inW         bool
}

// FindPivots reduces frontier s to a pivot set p by running k rounds of
// relaxation bounded by bound, then selecting roots of the resulting
// relaxation forest whose subtree holds at least k vertices. w is every
// vertex reached within those k rounds (a superset of s). If w grows
// past k*len(s), FindPivots gives up early and returns p = s.
//
// state is only ever tightened: on the normal path a vertex's distance
// is written back exactly when FindPivots' own bounded relaxation found
// something better than what state already held. The early return
// (w past k*len(s)) writes nothing back.
//
// Complexity: O(min(k^2*|S|, k*|W|)).
func FindPivots(g *core.Graph, bound float64, s []int, k int, state *core.DistState) ([]int, []int) {
	local := make(map[int]*vertexState, len(s)*2)
	w := make([]int, 0, len(s))
	inW := make(map[int]bool, len(s))

	for _, v := range s {
		local[v] = &vertexState{distance: state.Get(v), inW: true}
		if !inW[v] {
			inW[v] = true
			w = append(w, v)
		}
	}

	wPrev := append([]int(nil), s...)
	threshold := k * len(s)

	for step := 0; step < k; step++ {
		var wCurrent []int
		for _, u := range wPrev {
			lu, ok := local[u]
			if !ok || !g.HasVertex(u) {
				continue
			}
			for _, e := range g.OutEdges(u) {
				nd := lu.distance + e.Weight
				if nd >= bound {
					continue
				}

				lv, exists := local[e.To]
				needsUpdate := !exists
				if exists && nd < lv.distance {
					needsUpdate = true
				}
				if !exists {
					lv = &vertexState{}
					local[e.To] = lv
				}
				if !needsUpdate {
					continue
				}

				lv.distance = nd
				lv.predecessor = u
				lv.hasPred = true
				if !lv.inW {
					lv.inW = true
					wCurrent = append(wCurrent, e.To)
				}
			}
		}

		for _, v := range wCurrent {
			if !inW[v] {
				inW[v] = true
				w = append(w, v)
			}
		}
		if len(w) > threshold {
			return append([]int(nil), s...), w
		}
		if len(wCurrent) == 0 {
			break
		}
		wPrev = wCurrent
	}

	children := make(map[int][]int)
	hasParent := make(map[int]bool)
	for _, v := range w {
		lv := local[v]
		if lv.hasPred && lv.inW {
			children[lv.predecessor] = append(children[lv.predecessor], v)
			hasParent[v] = true
		}
	}

	var roots []int
	for _, v := range w {
		if !hasParent[v] {
			roots = append(roots, v)
		}
	}

	var p []int
	for _, root := range roots {
		if subtreeSize(root, children) >= k {
			p = append(p, root)
		}
	}
	if len(p) == 0 {
		p = append([]int(nil), s...)
	}

	for _, v := range w {
		lv := local[v]
		if lv.inW && lv.distance < state.Get(v) {
			state.Set(v, lv.distance)
		}
	}

	return p, w
}

// subtreeSize counts the vertices reachable from root in the
// relaxation forest via an explicit stack, avoiding recursion depth
// proportional to tree height.
func subtreeSize(root int, children map[int][]int) int {
	size := 0
	stack := []int{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		v := stack[n]
		stack = stack[:n]
		size++
		stack = append(stack, children[v]...)
	}

	return size
}
