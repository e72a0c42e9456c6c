package planner

import "container/heap"

// openHeap is a min-heap over *searchState ordered by f ascending, ties
// broken by insertion order (spec.md §3, Open Heap). It supports push,
// pop-min, peek-min, O(1) membership via searchState.heapIndex, and
// decrease-key, following the same container/heap-backed shape as the
// teacher's dijkstra.nodePQ, extended with an index back-pointer the way
// a textbook indexed binary heap requires for decrease-key.
type openHeap struct {
	items []*searchState
	seq   uint64 // monotonic counter for stable insertion-order tie-breaking
}

func newOpenHeap() *openHeap {
	h := &openHeap{}
	heap.Init(h)
	return h
}

// Len, Less, Swap, Push, Pop implement container/heap.Interface.

func (h *openHeap) Len() int { return len(h.items) }

func (h *openHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.insertionSeq < b.insertionSeq
}

func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].heapIndex = i
	h.items[j].heapIndex = j
}

func (h *openHeap) Push(x any) {
	s := x.(*searchState)
	s.heapIndex = len(h.items)
	h.items = append(h.items, s)
}

func (h *openHeap) Pop() any {
	old := h.items
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	s.heapIndex = -1
	return s
}

// push inserts s into the heap, stamping it with the next insertion
// sequence number so ties on f break in FIFO order.
func (h *openHeap) push(s *searchState) {
	h.seq++
	s.insertionSeq = h.seq
	heap.Push(h, s)
}

// popMin removes and returns the minimum-f state. Panics if empty; callers
// must check Len() first (mirrors the source's unchecked m_open.min()).
func (h *openHeap) popMin() *searchState {
	return heap.Pop(h).(*searchState)
}

// peekMin returns the minimum-f state without removing it.
func (h *openHeap) peekMin() *searchState {
	return h.items[0]
}

// contains reports whether s currently sits in the heap.
func (h *openHeap) contains(s *searchState) bool {
	return s.heapIndex >= 0 && s.heapIndex < len(h.items) && h.items[s.heapIndex] == s
}

// decreaseKey re-establishes heap order after s.f has been lowered
// in place. Safe to call even if f increased (it degrades to heap.Fix).
func (h *openHeap) decreaseKey(s *searchState) {
	heap.Fix(h, s.heapIndex)
}

// clear empties the heap, resetting every contained state's heapIndex to
// -1; used when the search tree is reinitialised or restored, ahead of a
// re-push.
func (h *openHeap) clear() {
	for _, s := range h.items {
		s.heapIndex = -1
	}
	h.items = h.items[:0]
}

// iterate calls fn for every state currently in the heap, in no
// particular order. Used by reorder (C6 step 3, "re-key OPEN").
func (h *openHeap) iterate(fn func(*searchState)) {
	for _, s := range h.items {
		fn(s)
	}
}

// reheapifyAll re-establishes heap order after every item's key may have
// changed (e.g. an epsilon change recomputed every f). Mirrors the
// source's m_open.make().
func (h *openHeap) reheapifyAll() {
	heap.Init(h)
}
