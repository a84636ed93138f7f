package optics

import "container/heap"

// SeedQueue is an ordered set of unprocessed candidate point handles, keyed
// by (reachability, handle-identity) ascending. It supports insertion,
// decrease-key, and pop-minimum in O(log n), and guarantees a handle
// appears at most once.
//
// It is implemented as an indexed binary heap on top of container/heap, the
// same approach the teacher's spatial index uses for its bounded KNN
// priority queue (see the knnHeap type backing KDTree.QueryKNN), extended
// here with a handle→slot index so entries can be located and their key
// decreased in place rather than only popped. A plain heap without this
// bookkeeping would require lazy deletion, which spec.md explicitly
// disallows: stale entries would violate total coverage (P1).
type SeedQueue struct {
	h seedHeap
	// pos maps a handle to its current index within h, or -1 if absent.
	pos map[int]int
}

// NewSeedQueue returns an empty SeedQueue.
func NewSeedQueue() *SeedQueue {
	return &SeedQueue{pos: make(map[int]int)}
}

// Contains reports whether handle is currently present in the queue.
func (sq *SeedQueue) Contains(handle int) bool {
	_, ok := sq.pos[handle]
	return ok
}

// Insert adds handle with the given reachability key. handle must not
// already be present.
func (sq *SeedQueue) Insert(handle int, reachability float64) {
	heap.Push(sq, seedEntry{handle: handle, key: reachability})
}

// Remove removes a known-present handle from the queue.
func (sq *SeedQueue) Remove(handle int) {
	i, ok := sq.pos[handle]
	if !ok {
		return
	}
	heap.Remove(sq, i)
}

// UpdateKey decreases handle's reachability key in place, re-establishing
// heap order. Semantically equivalent to Remove followed by Insert, as
// required whenever a point's reachability improves while queued.
func (sq *SeedQueue) UpdateKey(handle int, newReachability float64) {
	i, ok := sq.pos[handle]
	if !ok {
		sq.Insert(handle, newReachability)
		return
	}
	sq.h[i].key = newReachability
	heap.Fix(sq, i)
}

// PopMin removes and returns the handle with the smallest (reachability,
// identity) key. It panics if the queue is empty — callers must check Len.
func (sq *SeedQueue) PopMin() int {
	return heap.Pop(sq).(seedEntry).handle
}

// seedEntry is one (handle, key) pair stored in the heap.
type seedEntry struct {
	handle int
	key    float64
}

// seedHeap is the backing slice for SeedQueue's heap order, ordered
// ascending by key with handle (identity) as the tie-break — the tie-break
// OPTICS requires so that a deterministic run always resolves
// equal-reachability seeds the same way (spec.md §4.5, §8 P4).
//
// container/heap.Interface is implemented on *SeedQueue rather than on
// seedHeap directly so that Swap can keep the handle→slot map in sync.
type seedHeap []seedEntry

// Len reports how many handles are currently queued. It also satisfies
// container/heap.Interface.
func (sq *SeedQueue) Len() int { return len(sq.h) }

func (sq *SeedQueue) Less(i, j int) bool {
	if sq.h[i].key != sq.h[j].key {
		return sq.h[i].key < sq.h[j].key
	}
	return sq.h[i].handle < sq.h[j].handle
}

func (sq *SeedQueue) Swap(i, j int) {
	sq.h[i], sq.h[j] = sq.h[j], sq.h[i]
	sq.pos[sq.h[i].handle] = i
	sq.pos[sq.h[j].handle] = j
}

func (sq *SeedQueue) Push(x any) {
	e := x.(seedEntry)
	sq.pos[e.handle] = len(sq.h)
	sq.h = append(sq.h, e)
}

func (sq *SeedQueue) Pop() any {
	old := sq.h
	n := len(old)
	e := old[n-1]
	sq.h = old[:n-1]
	delete(sq.pos, e.handle)
	return e
}
