package main

import "container/heap"

// PairHeap is a 1-based-in-spirit (container/heap is 0-based, but the
// back-index discipline is identical) min-heap of live Pairs ordered
// by ascending Error. Grounded on the teacher's mesh_simplification.go
// EdgeHeap (Len/Less/Swap/Push/Pop with an index back-pointer field),
// generalized with Erase/Update so pair keys can change in place —
// the teacher's version never needed that because it rebuilt its heap
// from scratch after every collapse instead of doing incremental
// decrease/increase-key (spec §4.F requires genuine in-place updates).
type PairHeap struct {
	pairs []*Pair
}

func (h *PairHeap) Len() int { return len(h.pairs) }

func (h *PairHeap) Less(i, j int) bool { return h.pairs[i].Error < h.pairs[j].Error }

func (h *PairHeap) Swap(i, j int) {
	h.pairs[i], h.pairs[j] = h.pairs[j], h.pairs[i]
	h.pairs[i].index = i
	h.pairs[j].index = j
}

func (h *PairHeap) Push(x any) {
	p := x.(*Pair)
	p.index = len(h.pairs)
	h.pairs = append(h.pairs, p)
}

func (h *PairHeap) Pop() any {
	old := h.pairs
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	p.index = -1
	h.pairs = old[:n-1]
	return p
}

// NewPairHeap builds a heap from an initial collection of pairs in
// O(n), per spec §4.F's build operation.
func NewPairHeap(pairs []*Pair) *PairHeap {
	h := &PairHeap{pairs: pairs}
	for i, p := range h.pairs {
		p.index = i
	}
	heap.Init(h)
	return h
}

// Top returns the minimum-error live entry without removing it.
func (h *PairHeap) Top() *Pair {
	return h.pairs[0]
}

// PopMin removes and returns the minimum-error entry.
func (h *PairHeap) PopMin() *Pair {
	return heap.Pop(h).(*Pair)
}

// PushPair inserts p into the heap.
func (h *PairHeap) PushPair(p *Pair) {
	heap.Push(h, p)
}

// Erase removes p from the heap regardless of its current key,
// spec §4.F's erase-by-identity operation.
func (h *PairHeap) Erase(p *Pair) {
	heap.Remove(h, p.index)
}

// Update re-establishes heap order after p.Error has changed,
// handling both decrease-key and increase-key.
func (h *PairHeap) Update(p *Pair) {
	heap.Fix(h, p.index)
}
