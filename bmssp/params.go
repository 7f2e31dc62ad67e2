// File: params.go
// Role: parameter derivation (C7) — k, t, and the top recursion depth
// ℓ, computed purely from n.
package bmssp

import (
	"math"
	"math/bits"
)

// Params computes the BMSSP tuning parameters for a graph of n
// vertices:
//
//   - k = 2^(floor(log2(n))/3), clamped to at least 1 — the base
//     case's settlement cap and the pivot finder's round count.
//   - t = 2^(2*floor(log2(n))/3), clamped to at least 1 — controls the
//     workset block-size growth M = 2^((ℓ-1)*t) across recursion
//     levels.
//   - l = floor(ln(n)/t) + 1 — the top-level recursion depth Solve
//     starts BMSSP at.
//
// Both exponents divide the integer log2(n) by 3 (and 2/3) using
// integer division before shifting, not real-valued exponentiation —
// this is the formula original_source/include/sssp/types.hpp's
// compute_k/compute_t implement, and observable behavior (recursion
// shape, workset sizing) depends on matching it exactly rather than a
// close floating-point approximation.
//
// Complexity: O(1).
func Params(n int) (k, t, l int) {
	if n < 1 {
		n = 1
	}

	log2n := bits.Len(uint(n)) - 1 // floor(log2(n)) for n >= 1

	k = 1 << (log2n / 3)
	if k < 1 {
		k = 1
	}

	t = 1 << ((2 * log2n) / 3)
	if t < 1 {
		t = 1
	}

	l = int(math.Log(float64(n))/float64(t)) + 1

	return k, t, l
}
