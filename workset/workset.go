// File: workset.go
// Role: block-structured priority workset (C3): Initialize, Insert,
// BatchPrepend, Pull, and read-only accessors.
package workset

import (
	"math"
	"sort"
)

// Pair is a (vertex, value) entry as returned by Pull.
type Pair struct {
	Vertex int
	Value  float64
}

// block is a value-sorted, at-most-M bag of pairs. UpperBound is only
// meaningful for D1 blocks: every pair in a D1 block has Value <=
// UpperBound, and D1's blocks partition (-Inf, B] by UpperBound.
type block struct {
	pairs      []Pair
	upperBound float64
}

func (b *block) minValue() float64 {
	if len(b.pairs) == 0 {
		return math.Inf(1)
	}

	return b.pairs[0].Value
}

// Workset is the two-sequence block structure described in spec.md
// §4.3: D0 holds batch-prepended blocks (LIFO, front-to-back
// non-decreasing relative to when they were prepended); D1 holds
// insertion-partitioned blocks covering (-Inf, B] in ascending order
// of UpperBound. A Workset is constructed fresh for every BMSSP frame
// (spec.md §3's lifecycle note) via New.
type Workset struct {
	m int     // max pairs per block, and Pull batch size
	b float64 // global upper bound; values >= b are never admitted

	d0 []*block // LIFO of batch-prepended blocks; index 0 is the front
	d1 []*block // ascending by upperBound; partitions (-Inf, b]

	keyMin map[int]float64 // best (smallest) value ever admitted per vertex
	total  int             // total live pairs across d0 and d1
}

// New constructs a Workset with block-size cap m and global bound b.
// m is clamped to at least 1, matching the reference's Initialize.
//
// Complexity: O(1).
func New(m int, b float64) *Workset {
	if m < 1 {
		m = 1
	}

	return &Workset{
		m:      m,
		b:      b,
		d0:     nil,
		d1:     []*block{{pairs: nil, upperBound: b}},
		keyMin: make(map[int]float64),
	}
}

// Empty reports whether the workset holds no live pairs.
//
// Complexity: O(1).
func (w *Workset) Empty() bool { return w.total == 0 }

// Size returns the number of live pairs currently stored.
//
// Complexity: O(1).
func (w *Workset) Size() int { return w.total }

// GetM returns the block-size cap this Workset was constructed with.
func (w *Workset) GetM() int { return w.m }

// GetB returns the global upper bound this Workset was constructed with.
func (w *Workset) GetB() float64 { return w.b }

// NumD0Blocks returns the current number of blocks in D0.
func (w *Workset) NumD0Blocks() int { return len(w.d0) }

// NumD1Blocks returns the current number of blocks in D1.
func (w *Workset) NumD1Blocks() int { return len(w.d1) }

// findD1Index returns the index of the D1 block whose upperBound is the
// smallest one >= value — a lower_bound query over the ascending
// upperBound sequence, which D1 maintains as an invariant. Since D1
// always ends with a block of upperBound == w.b and value < w.b is
// checked by callers before this is invoked, the search always finds a
// block.
//
// Complexity: O(log |D1|).
func (w *Workset) findD1Index(value float64) int {
	return sort.Search(len(w.d1), func(i int) bool {
		return w.d1[i].upperBound >= value
	})
}

// Insert admits (v, value) into the workset, following spec.md §4.3:
// dropped if value >= B or if v already has an admitted value <= value;
// otherwise placed into sorted position within the responsible D1
// block, splitting that block if it now exceeds M pairs.
//
// Complexity: O(log |D1| + M): a binary search over D1, then a scan and
// shift within one block of at most M pairs (and an O(M) copy plus an
// O(|D1|) slice shift when that block splits).
func (w *Workset) Insert(v int, value float64) {
	if value >= w.b {
		return
	}
	if cur, ok := w.keyMin[v]; ok && cur <= value {
		return
	}
	w.keyMin[v] = value

	idx := w.findD1Index(value)
	blk := w.d1[idx]

	// Remove any existing occurrence of v in this block (bounded by M).
	for i, p := range blk.pairs {
		if p.Vertex == v {
			blk.pairs = append(blk.pairs[:i], blk.pairs[i+1:]...)
			w.total--

			break
		}
	}

	// Insert in sorted position by value.
	pos := sort.Search(len(blk.pairs), func(i int) bool {
		return blk.pairs[i].Value >= value
	})
	blk.pairs = append(blk.pairs, Pair{})
	copy(blk.pairs[pos+1:], blk.pairs[pos:])
	blk.pairs[pos] = Pair{Vertex: v, Value: value}
	w.total++

	if len(blk.pairs) > w.m {
		w.splitD1(idx)
	}
}

// splitD1 splits an overflowing D1 block at idx into two blocks by
// median position: the left half keeps the block's list position and
// takes upperBound equal to the right half's minimum value; the right
// half is inserted immediately after and keeps the original upperBound.
//
// Complexity: O(M).
func (w *Workset) splitD1(idx int) {
	blk := w.d1[idx]
	mid := len(blk.pairs) / 2

	right := &block{
		pairs:      append([]Pair(nil), blk.pairs[mid:]...),
		upperBound: blk.upperBound,
	}
	blk.pairs = append([]Pair(nil), blk.pairs[:mid]...)
	blk.upperBound = right.minValue()

	w.d1 = append(w.d1, nil)
	copy(w.d1[idx+2:], w.d1[idx+1:])
	w.d1[idx+1] = right
}

// BatchPrepend admits a batch of pairs known to all be strictly smaller
// than any value currently stored in the workset (a caller contract the
// structure does not verify — spec.md §9). Duplicate vertices within
// pairs are reduced to their minimum value; values >= B are dropped;
// vertices whose keyMin is already <= their batch value are dropped.
// Surviving pairs are sorted and chunked into blocks of at most M,
// pushed to the front of D0 in ascending-value order.
//
// Complexity: O(|pairs| log |pairs| + |D0|): the surviving pairs are
// sorted as a whole, and the new chunks are prepended by copying D0.
func (w *Workset) BatchPrepend(pairs []Pair) {
	if len(pairs) == 0 {
		return
	}

	minPerKey := make(map[int]float64, len(pairs))
	for _, p := range pairs {
		if p.Value >= w.b {
			continue
		}
		if cur, ok := minPerKey[p.Vertex]; !ok || p.Value < cur {
			minPerKey[p.Vertex] = p.Value
		}
	}

	surviving := make([]Pair, 0, len(minPerKey))
	for v, value := range minPerKey {
		if cur, ok := w.keyMin[v]; ok && cur <= value {
			continue
		}
		w.keyMin[v] = value
		surviving = append(surviving, Pair{Vertex: v, Value: value})
	}
	if len(surviving) == 0 {
		return
	}

	sort.Slice(surviving, func(i, j int) bool { return surviving[i].Value < surviving[j].Value })

	var chunks []*block
	for i := 0; i < len(surviving); i += w.m {
		end := i + w.m
		if end > len(surviving) {
			end = len(surviving)
		}
		chunks = append(chunks, &block{pairs: append([]Pair(nil), surviving[i:end]...)})
	}

	w.d0 = append(chunks, w.d0...)
	w.total += len(surviving)
}

// Pull greedily collects up to M pairs, draining D0 front-to-back and
// then D1 front-to-back, deleting fully consumed blocks and trimming
// partially consumed ones. It returns the pulled pairs and a boundary
// value such that every pulled value <= boundary <= every remaining
// value (spec.md §8's "Workset boundary" invariant), provided every
// BatchPrepend so far held only values below what the workset then
// stored; otherwise a pulled value may exceed the boundary.
//
// Complexity: O(|pulled| + |D1|), since the surviving D1 blocks are
// copied into a new slice.
func (w *Workset) Pull() ([]Pair, float64) {
	result := make([]Pair, 0, w.m)
	if w.Empty() {
		return result, w.b
	}

	boundary := w.b
	boundarySet := false

	// Drain D0.
	consumedD0 := 0
	for _, blk := range w.d0 {
		if len(result) >= w.m {
			break
		}
		take := w.m - len(result)
		if take >= len(blk.pairs) {
			result = append(result, blk.pairs...)
			consumedD0++
		} else {
			result = append(result, blk.pairs[:take]...)
			blk.pairs = blk.pairs[take:]
			boundary = blk.minValue()
			boundarySet = true

			break
		}
	}
	w.d0 = w.d0[consumedD0:]

	// Drain D1 if D0 didn't fill the quota. A block found already empty
	// is skipped in place rather than removed, matching the reference.
	// The only empty D1 block that can exist is the single block with
	// upperBound B that New installs, and that Pull reinstalls below,
	// while D1 holds no pairs; it stays across calls until an Insert
	// fills it.
	if len(result) < w.m {
		var keep []*block
		i := 0
		for ; i < len(w.d1); i++ {
			blk := w.d1[i]
			if len(result) >= w.m {
				break
			}
			if len(blk.pairs) == 0 {
				keep = append(keep, blk)

				continue
			}
			take := w.m - len(result)
			if take >= len(blk.pairs) {
				result = append(result, blk.pairs...)
			} else {
				result = append(result, blk.pairs[:take]...)
				blk.pairs = blk.pairs[take:]
				boundary = blk.minValue()
				boundarySet = true
				keep = append(keep, blk)
				i++

				break
			}
		}
		w.d1 = append(keep, w.d1[i:]...)
		if len(w.d1) == 0 {
			w.d1 = []*block{{pairs: nil, upperBound: w.b}}
		}
	}

	w.total -= len(result)
	for _, p := range result {
		delete(w.keyMin, p.Vertex)
	}

	if !boundarySet {
		// No block was left partially consumed: boundary is the
		// smallest remaining value (covers both the "quota filled
		// exactly on a block boundary" and "ran out before M" cases),
		// or B if nothing remains.
		if w.Empty() {
			boundary = w.b
		} else {
			boundary = w.minRemaining()
		}
	}

	return result, boundary
}

// minRemaining returns the smallest value currently stored anywhere in
// D0 or D1, or B if the workset is empty.
//
// Complexity: O(1) amortized — D0's front and D1's first non-empty
// block are always the minimum-holders, per both sequences' sortedness
// invariants.
func (w *Workset) minRemaining() float64 {
	if len(w.d0) > 0 && len(w.d0[0].pairs) > 0 {
		return w.d0[0].minValue()
	}
	for _, blk := range w.d1 {
		if len(blk.pairs) > 0 {
			return blk.minValue()
		}
	}

	return w.b
}
