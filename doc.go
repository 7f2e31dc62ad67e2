// Package bmssp is an engine for single-source shortest paths on directed
// graphs with non-negative real edge weights, built around the Bounded
// Multi-Source Shortest Path (BMSSP) recursion: a divide-and-conquer
// algorithm that aims to beat plain Dijkstra by repeatedly shrinking the
// active frontier before running small bounded Dijkstra searches on it.
//
// 🚀 What's in here?
//
//	A pure, in-memory algorithm core that brings together:
//		• core:    dense int-indexed graph + tentative distance/predecessor store
//		• heap:    indexed binary min-heap with true decrease-key
//		• workset: block-structured priority workset (Insert/BatchPrepend/Pull)
//		• basecase: bounded partial Dijkstra, the recursion's base case
//		• pivot:   k-round bounded relaxation that shrinks a frontier to pivots
//		• bmssp:   the recursion itself, parameter derivation, and Solve
//
// ✨ Design notes
//
//   - Single-threaded, no I/O, no logging: the core never throws, retries,
//     or logs — failures are the caller's preconditions (see bmssp.Solve's
//     doc for the one exception: an absent source returns empty maps).
//   - Pure Go, one test dependency (testify).
//   - Every package follows the shape of github.com/katalvlaran/lvlath
//     with a doc.go overview; sentinel errors (core/types.go,
//     heap/heap.go), functional options for the top-level entry point
//     (bmssp/options.go), and a container/heap priority queue (heap).
//
// Quick ASCII example — the engine finds A→D as 3 (via B, C), not 10 direct:
//
//	    A --1--> B --1--> C --1--> D
//	    |                          ^
//	    +-----------10-------------+
//
// Package layout:
//
//	core/     — Graph, DistState, sentinel errors
//	heap/     — indexed binary min-heap
//	workset/  — block-structured priority workset
//	basecase/ — bounded partial Dijkstra
//	pivot/    — FindPivots frontier reduction
//	bmssp/    — BMSSP recursion, parameter derivation, Solve
//
//	go get github.com/katalvlaran/bmssp/bmssp
package bmssp
