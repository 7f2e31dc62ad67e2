// File: heap.go
// Role: indexed binary min-heap (C2), built on container/heap with a
// position index added for true decrease-key.
package heap

import (
	"container/heap"
	"errors"
)

// ErrEmptyHeap is returned by ExtractMin and PeekMin when the heap has
// no elements. The core algorithm never triggers this (BaseCase always
// checks Empty() first); it is a programmer-error sentinel, per
// spec.md §7.
var ErrEmptyHeap = errors.New("heap: heap is empty")

// entry is one (vertex, key) pair stored in the heap array.
type entry struct {
	vertex int
	key    float64
}

// innerHeap is the container/heap.Interface implementation. It keeps
// pos in sync on every Swap, Push, and Pop so Heap's public methods can
// locate a vertex's current slot in O(1).
type innerHeap struct {
	entries []entry
	pos     []int // pos[vertex] = index in entries, or -1 if absent
}

func (h innerHeap) Len() int { return len(h.entries) }

func (h innerHeap) Less(i, j int) bool { return h.entries[i].key < h.entries[j].key }

func (h innerHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].vertex] = i
	h.pos[h.entries[j].vertex] = j
}

func (h *innerHeap) Push(x interface{}) {
	e := x.(entry)
	h.pos[e.vertex] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *innerHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	h.pos[e.vertex] = -1

	return e
}

// Heap is an indexed binary min-heap over vertex ids in [0, n). It must
// be constructed with New(n), where n is the number of vertices whose
// ids may ever be pushed — the position index is a dense array sized
// to n, matching the dense-vertex-id model the rest of this module
// uses (spec.md §3).
type Heap struct {
	h innerHeap
}

// New allocates an empty Heap over vertex ids in [0, n).
//
// Complexity: O(n).
func New(n int) *Heap {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}

	return &Heap{h: innerHeap{entries: make([]entry, 0, n), pos: pos}}
}

// Empty reports whether the heap holds no elements.
//
// Complexity: O(1).
func (h *Heap) Empty() bool {
	return h.h.Len() == 0
}

// Size returns the number of elements currently in the heap.
//
// Complexity: O(1).
func (h *Heap) Size() int {
	return h.h.Len()
}

// Clear removes every element from the heap, leaving it ready for reuse.
//
// Complexity: O(n) to reset the position index.
func (h *Heap) Clear() {
	h.h.entries = h.h.entries[:0]
	for i := range h.h.pos {
		h.h.pos[i] = -1
	}
}

// Contains reports whether vertex v currently has a live entry in the
// heap.
//
// Complexity: O(1).
func (h *Heap) Contains(v int) bool {
	return v >= 0 && v < len(h.h.pos) && h.h.pos[v] != -1
}

// Insert adds (v, key) to the heap. If v is already present, Insert
// behaves as DecreaseKey when key is strictly smaller than v's current
// key, and is a no-op otherwise — it never increases a key (spec.md
// §4.2). Returns true iff the heap's contents changed.
//
// Complexity: O(log n).
func (h *Heap) Insert(v int, key float64) bool {
	if h.Contains(v) {
		if key < h.h.entries[h.h.pos[v]].key {
			return h.DecreaseKey(v, key)
		}

		return false
	}
	heap.Push(&h.h, entry{vertex: v, key: key})

	return true
}

// DecreaseKey lowers v's key to key. It is a no-op if v is absent from
// the heap or if key is not strictly smaller than v's current key.
//
// Complexity: O(log n).
func (h *Heap) DecreaseKey(v int, key float64) bool {
	if !h.Contains(v) {
		return false
	}
	i := h.h.pos[v]
	if key >= h.h.entries[i].key {
		return false
	}
	h.h.entries[i].key = key
	heap.Fix(&h.h, i)

	return true
}

// ExtractMin removes and returns the (vertex, key) pair with the
// smallest key. It returns ErrEmptyHeap if the heap is empty.
//
// Complexity: O(log n).
func (h *Heap) ExtractMin() (int, float64, error) {
	if h.Empty() {
		return 0, 0, ErrEmptyHeap
	}
	e := heap.Pop(&h.h).(entry)

	return e.vertex, e.key, nil
}

// PeekMin returns the (vertex, key) pair with the smallest key without
// removing it. It returns ErrEmptyHeap if the heap is empty.
//
// Complexity: O(1).
func (h *Heap) PeekMin() (int, float64, error) {
	if h.Empty() {
		return 0, 0, ErrEmptyHeap
	}

	return h.h.entries[0].vertex, h.h.entries[0].key, nil
}
