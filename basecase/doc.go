// Package basecase implements the bounded partial Dijkstra (C4) that
// BMSSP's recursion bottoms out to at level 0: a single-source search
// that stops either when the frontier's distance reaches the bound B,
// or after settling k+1 vertices.
//
// Run is a single function: it allocates a heap, seeds it with the
// source, then loops extracting and relaxing — the bounded,
// vertex-limited variant original_source/include/sssp/base_case.hpp
// implements. There is no separate runner type.
package basecase
