// File: dist.go
// Role: DistState (C1) — the dense per-vertex tentative distance and
// predecessor store shared by every frame of a BMSSP solve.
package core

import "math"

// DistState holds the tentative distance and predecessor for every
// vertex in a solve. It spans the entire solve: BaseCase, FindPivots,
// and every level of the BMSSP recursion read and write the same
// DistState, per spec.md §5 ("DistState spans the entire solve").
//
// Invariants maintained by callers in this module (spec.md §3):
//   - Dist[v] is always ≥ the true shortest-path distance (an upper bound).
//   - Dist[v] < +Inf implies a relaxed path of that exact length exists.
//   - Pred[v] != InvalidVertex implies Dist[Pred[v]] + w(Pred[v], v) == Dist[v]
//     held at the moment Pred[v] was last written, not necessarily after.
type DistState struct {
	Dist []float64 // Dist[v]: tentative distance from the solve's source
	Pred []int     // Pred[v]: predecessor vertex id, or InvalidVertex
}

// NewDistState allocates a DistState for n vertices with every Dist
// entry set to +Inf and every Pred entry set to InvalidVertex. Callers
// seed the source's distance to 0 themselves (the store has no notion
// of "the" source — BMSSP frames seed whichever vertices their frontier
// names).
//
// Complexity: O(n).
func NewDistState(n int) *DistState {
	if n < 0 {
		n = 0
	}
	dist := make([]float64, n)
	pred := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = InvalidVertex
	}

	return &DistState{Dist: dist, Pred: pred}
}

// Get returns the current tentative distance of v.
//
// Complexity: O(1).
func (s *DistState) Get(v int) float64 {
	return s.Dist[v]
}

// Set overwrites v's tentative distance unconditionally. Callers are
// responsible for only calling this when the new value does not raise
// Dist[v] (spec.md §3's monotonicity invariant is a caller contract,
// not one DistState itself enforces — mirroring the reference
// implementation's state.set, which is likewise unconditional).
//
// Complexity: O(1).
func (s *DistState) Set(v int, value float64) {
	s.Dist[v] = value
}

// SetPred overwrites v's predecessor unconditionally.
//
// Complexity: O(1).
func (s *DistState) SetPred(v int, pred int) {
	s.Pred[v] = pred
}

// HasPred reports whether v currently has a recorded predecessor.
//
// Complexity: O(1).
func (s *DistState) HasPred(v int) bool {
	return s.Pred[v] != InvalidVertex
}

// Len returns the number of vertices this DistState was sized for.
//
// Complexity: O(1).
func (s *DistState) Len() int {
	return len(s.Dist)
}
