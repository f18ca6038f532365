// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package maxheap provides a fixed-capacity max-heap which retains the
// items with the smallest keys pushed into it. It is the candidate set
// used by k-nearest-neighbour searches, where the key is a distance and
// the root of the heap is the current worst of the best candidates.
package maxheap

import (
	"cmp"
	"container/heap"
	"iter"
)

// An Item is a single entry in a Bounded heap. Key orders the item and
// Index identifies what the item refers to, typically a position in a
// caller-owned slice.
type Item[K cmp.Ordered] struct {
	Key   K
	Index int
}

// items is the heap.Interface implementation backing Bounded. The item
// with the largest key is at position 0.
type items[K cmp.Ordered] []Item[K]

func (h items[K]) Len() int            { return len(h) }
func (h items[K]) Less(i, j int) bool  { return h[i].Key > h[j].Key }
func (h items[K]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *items[K]) Push(x interface{}) { *h = append(*h, x.(Item[K])) }
func (h *items[K]) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Bounded is a max-heap with a fixed capacity. Once full, pushing an
// item evicts the current maximum if, and only if, the new item's key
// is strictly smaller. A Bounded heap therefore always holds the
// Cap() smallest-keyed items pushed into it.
//
// The zero value is not usable. Use New.
type Bounded[K cmp.Ordered] struct {
	items    items[K]
	capacity int
}

// New creates an empty bounded max-heap which can hold up to capacity
// items. Panics if capacity is less than 1.
func New[K cmp.Ordered](capacity int) *Bounded[K] {
	if capacity < 1 {
		fmtPanic("capacity must be at least 1, got %d", capacity)
	}
	return &Bounded[K]{
		items:    make(items[K], 0, capacity),
		capacity: capacity,
	}
}

// Push offers an item to the heap and reports whether it was kept.
//
// While the heap is below capacity the item is always kept. When the
// heap is full the item replaces the current maximum only if its key
// is smaller than the maximum's key; otherwise it is discarded.
func (h *Bounded[K]) Push(x Item[K]) bool {
	if len(h.items) < h.capacity {
		heap.Push(&h.items, x)
		return true
	}
	if x.Key < h.items[0].Key {
		h.items[0] = x
		heap.Fix(&h.items, 0)
		return true
	}
	return false
}

// Max returns the item with the largest key. The second return value
// is false if the heap is empty.
func (h *Bounded[K]) Max() (Item[K], bool) {
	if len(h.items) == 0 {
		return Item[K]{}, false
	}
	return h.items[0], true
}

// Len returns the number of items currently held.
func (h *Bounded[K]) Len() int {
	return len(h.items)
}

// Cap returns the capacity the heap was created with.
func (h *Bounded[K]) Cap() int {
	return h.capacity
}

// Full reports whether the heap holds Cap() items.
func (h *Bounded[K]) Full() bool {
	return len(h.items) == h.capacity
}

// All returns an iterator over the items currently held. Iteration
// order is heap order, not key order. The heap must not be modified
// during iteration.
func (h *Bounded[K]) All() iter.Seq[Item[K]] {
	return func(yield func(Item[K]) bool) {
		for _, x := range h.items {
			if !yield(x) {
				return
			}
		}
	}
}
