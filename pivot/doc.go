// Package pivot implements FindPivots (C5): k rounds of bounded,
// Bellman-Ford-style relaxation from a frontier set S, followed by
// picking the roots of the resulting relaxation forest whose subtree
// reaches at least k vertices.
//
// The algorithm itself is grounded on
// original_source/include/sssp/find_pivots.hpp. Its subtree-size step —
// a plain tree walk over a parent→children map built from the
// relaxation forest — is written as an explicit-stack traversal rather
// than recursion, following flow/ford_fulkerson.go's augmenting-path
// search: a `stack := []stackEntry{...}` slice popped and pushed by
// slice-append/slice-reslice instead of a recursive call. (The
// teacher's dfs package, by contrast, is plain recursion throughout —
// dfs/cycle.go's dfsVisit and dfs/topological.go's (*topoSorter).visit
// both walk via the Go call stack, not an explicit one.) A pivot's
// relaxation tree can be as deep as |S| in an adversarial graph, which
// is what makes the explicit-stack shape worth borrowing here.
package pivot
