// File: bmssp.go
// Role: BMSSP recursion (C6) and the public Solve entry point.
package bmssp

import (
	"context"
	"math"

	"github.com/katalvlaran/bmssp/basecase"
	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/pivot"
	"github.com/katalvlaran/bmssp/workset"
)

// Solve computes single-source shortest paths from source over g,
// returning a distance and predecessor map that include only vertices
// with a finite tentative distance. A source outside g's vertex range
// is not an error: Solve returns empty maps, per spec.md §7's
// "SourceAbsent... recovered locally" rule.
//
// The returned error is non-nil only when the context installed via
// WithContext is done (canceled or past its deadline, including before
// Solve was called) by the time the solve finishes; the returned maps in
// that case still hold every distance tightened before cancellation was
// observed, since DistState is monotonically tightened and a mid-run
// abort never leaves it inconsistent.
//
// Complexity: see Params and the per-component complexity notes in
// basecase, pivot, and workset.
func Solve(g *core.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make(map[int]float64)
	pred := make(map[int]int)
	if g == nil || !g.HasVertex(source) {
		return dist, pred, nil
	}

	n := g.NumVertices()
	state := core.NewDistState(n)
	state.Set(source, 0)

	if cfg.DijkstraFallbackThreshold > 0 && n < cfg.DijkstraFallbackThreshold {
		// A classical Dijkstra is just the base case run unbounded with
		// k large enough that the k+1 settlement cap never fires — an
		// implementation choice with no observable effect on Solve's
		// return values (spec.md §9).
		basecase.Run(g, math.Inf(1), source, state, n)
	} else {
		k, t, l := Params(n)
		rc := &runContext{ctx: cfg.Ctx, checkEvery: cfg.CancelCheckEvery}
		run(g, rc, l, math.Inf(1), []int{source}, state, k, t)
	}

	for v := 0; v < n; v++ {
		d := state.Get(v)
		if math.IsInf(d, 1) {
			continue
		}
		dist[v] = d
		if state.HasPred(v) {
			pred[v] = state.Pred[v]
		}
	}

	return dist, pred, cfg.Ctx.Err()
}

// runContext carries the cancellation context through the recursion
// without adding it to run's own parameter list — mirroring how
// basecase and pivot never see it at all, since only the level-loop in
// step 5 is a cancellation point (spec.md §5).
type runContext struct {
	ctx        context.Context
	checkEvery int
}

// run implements BMSSP's recursive step (spec.md §4.6). At l <= 0 it
// delegates to basecase.Run unchanged, using only s[0] — the contract
// is that the frontier is effectively a single vertex at the base case.
func run(g *core.Graph, rc *runContext, l int, bound float64, s []int, state *core.DistState, k, t int) (float64, []int) {
	if len(s) == 0 {
		return bound, nil
	}
	if l <= 0 {
		return basecase.Run(g, bound, s[0], state, k)
	}

	p, w := pivot.FindPivots(g, bound, s, k, state)

	m := 1 << ((l - 1) * t)
	d := workset.New(m, bound)
	for _, pv := range p {
		if val := state.Get(pv); val < bound {
			d.Insert(pv, val)
		}
	}

	u := make([]int, 0)
	seen := make(map[int]bool)
	currentBp := bound

	for iter := 0; !d.Empty(); iter++ {
		if iter%rc.checkEvery == 0 && rc.ctx.Err() != nil {
			break
		}

		pairs, bi := d.Pull()
		if len(pairs) == 0 {
			break
		}
		si := make([]int, len(pairs))
		for i, pr := range pairs {
			si[i] = pr.Vertex
		}

		bSub, uSub := run(g, rc, l-1, bi, si, state, k, t)
		if bSub < currentBp {
			currentBp = bSub
		}

		for _, uu := range uSub {
			if !seen[uu] {
				seen[uu] = true
				u = append(u, uu)
			}

			du := state.Get(uu)
			for _, e := range g.OutEdges(uu) {
				alt := du + e.Weight
				dv := state.Get(e.To)
				switch {
				case alt < bound && alt <= dv:
					if alt < dv {
						state.Set(e.To, alt)
					}
					state.SetPred(e.To, uu)
					d.Insert(e.To, alt)
				case alt >= currentBp && alt < bi:
					// alt is not checked against the workset's current
					// minimum: pairs admitted by Insert earlier in this
					// same relaxation pass may be smaller than alt, in
					// which case BatchPrepend's caller contract does not
					// hold and the next Pull's boundary may sit below a
					// value it returns (spec.md §4.6 step 5.e).
					d.BatchPrepend([]workset.Pair{{Vertex: e.To, Value: alt}})
				}
			}
		}

		if len(u) > k*(1<<(l*t)) {
			break
		}
	}

	for _, wv := range w {
		if !seen[wv] {
			seen[wv] = true
			u = append(u, wv)
		}
	}

	return currentBp, u
}
