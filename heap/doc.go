// Package heap implements an indexed binary min-heap over
// (vertex id, key) pairs, keyed by a real-valued priority.
//
// It is the priority queue BaseCase uses to grow its bounded
// shortest-path tree (spec.md §4.2, §4.4). Unlike the teacher's
// dijkstra.nodePQ and prim_kruskal.edgePQ — both lazy-decrease-key
// container/heap.Interface queues that push duplicate entries and
// ignore stale ones on pop — this heap tracks each vertex's current
// slice position so DecreaseKey and Contains run in O(log n) and
// O(1) respectively, with at most one live entry per vertex.
//
// Complexity:
//
//   - Insert/DecreaseKey/ExtractMin: O(log n)
//   - Contains/PeekMin: O(1)
//
// Tie-break: strict less-than on key. Vertices with equal keys may be
// extracted in either order; no correctness property in this module
// depends on which (spec.md §4.2).
package heap
