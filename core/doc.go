// Package core defines the Graph and DistState types shared by every
// other package in this module: a dense, int-indexed adjacency-list
// graph, and the tentative distance/predecessor store the BMSSP
// recursion reads and writes throughout a solve.
//
// Graph is the "external collaborator" spec.md's core algorithm assumes:
// a static, read-only-during-a-solve structure exposing out-edge
// iteration in O(out-degree). DistState is the one piece of mutable
// state shared across every frame of the BMSSP recursion.
//
// This file declares no algorithms — see heap, workset, basecase, pivot,
// and bmssp for those. core is intentionally the leaf of the dependency
// graph: it imports nothing from this module.
package core
