// File: options.go
// Role: functional options for Solve, following the teacher's
// dijkstra.Option / dfs.Option shape.
package bmssp

import "context"

// Options configures a Solve run.
//
// Ctx allows cooperative cancellation between BMSSP recursion levels;
// defaults to context.Background() (never cancels).
//
// CancelCheckEvery controls how often, in outer-loop iterations of a
// BMSSP frame's pull/recurse/relax loop, the context is polled — 1
// checks every iteration; higher values trade cancellation latency for
// avoiding ctx.Err() call overhead in tight loops. Default 1.
//
// DijkstraFallbackThreshold, if positive, makes Solve run a classical
// Dijkstra instead of BMSSP whenever the graph has fewer than this many
// vertices — purely a performance choice, never observable through
// Solve's return values (spec.md §9's "Fallback to Dijkstra" note).
// Default 0 (disabled; always use BMSSP).
type Options struct {
	Ctx                       context.Context
	CancelCheckEvery          int
	DijkstraFallbackThreshold int
}

// Option mutates an Options value under construction.
type Option func(*Options)

// DefaultOptions returns the Options a bare Solve call runs with.
func DefaultOptions() Options {
	return Options{
		Ctx:                       context.Background(),
		CancelCheckEvery:          1,
		DijkstraFallbackThreshold: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored,
// leaving the default Background context in place.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCancelCheckEvery sets how many outer-loop iterations elapse
// between context checks. n < 1 is clamped to 1.
func WithCancelCheckEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.CancelCheckEvery = n
	}
}

// WithDijkstraFallback enables the classical-Dijkstra fast path for
// graphs with fewer than threshold vertices. threshold <= 0 disables
// the fallback.
func WithDijkstraFallback(threshold int) Option {
	return func(o *Options) {
		o.DijkstraFallbackThreshold = threshold
	}
}
