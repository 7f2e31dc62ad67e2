// Package bmssp ties the other packages together into the Bounded
// Multi-Source Shortest Path recursion (C6) and its parameter
// derivation (C7), exposing Solve as the single public entry point.
//
// Solve's shape — build an Options struct from functional options,
// validate/short-circuit, then hand off to an unexported driver — is
// the teacher's dijkstra.Dijkstra shape, generalized from a flat
// Dijkstra loop to a recursive divide-and-conquer search. Cooperative
// cancellation follows the teacher's dfs package: a context.Context
// carried in Options, checked once per outer-loop iteration rather
// than on every inner step, matching dfs.DFSOptions.Ctx's granularity.
package bmssp
