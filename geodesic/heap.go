package geodesic

import "container/heap"

// MinHeap is a binary min-heap keyed by float64. Entries with equal keys pop
// in insertion order, which keeps Dijkstra's settle order deterministic.
//
// The zero value is ready to use.
type MinHeap[T any] struct {
	items heapItems[T]
	seq   uint64
}

type heapItem[T any] struct {
	key float64
	seq uint64
	val T
}

// heapItems implements heap.Interface over (key, seq).
type heapItems[T any] []heapItem[T]

func (h heapItems[T]) Len() int { return len(h) }
func (h heapItems[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}
func (h heapItems[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *heapItems[T]) Push(x any)   { *h = append(*h, x.(heapItem[T])) }
func (h *heapItems[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Push inserts val with priority key. Complexity: O(log n).
func (h *MinHeap[T]) Push(key float64, val T) {
	h.seq++
	heap.Push(&h.items, heapItem[T]{key: key, seq: h.seq, val: val})
}

// Pop removes the entry with the smallest (key, insertion) pair.
// ok is false when the heap is empty. Complexity: O(log n).
func (h *MinHeap[T]) Pop() (val T, key float64, ok bool) {
	if len(h.items) == 0 {
		return val, 0, false
	}
	it := heap.Pop(&h.items).(heapItem[T])

	return it.val, it.key, true
}

// Len returns the number of queued entries.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// Reset empties the heap, keeping its capacity.
func (h *MinHeap[T]) Reset() {
	h.items = h.items[:0]
	h.seq = 0
}
