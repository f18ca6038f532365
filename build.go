// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math/rand/v2"
)

// A plane is a range of the index permutation viewed along one axis.
type plane[T any, F Number] struct {
	idx    []int
	points []T
	coord  Accessor[T, F]
	less   func(a, b F) bool
	axis   int
}

func (p plane[T, F]) key(i int) F {
	return p.coord(p.points[p.idx[i]], p.axis)
}

func (p plane[T, F]) swap(i, j int) {
	p.idx[i], p.idx[j] = p.idx[j], p.idx[i]
}

// partition rearranges p into three runs around the key at position
// pivot: keys ordered before it, keys equal to it, and keys ordered
// after it. It returns the bounds [lt, gt) of the run of equal keys,
// which always contains the pivot.
func (p plane[T, F]) partition(pivot int) (lt, gt int) {
	v := p.key(pivot)
	i := 0
	gt = len(p.idx)
	for i < gt {
		k := p.key(i)
		switch {
		case p.less(k, v):
			p.swap(lt, i)
			lt++
			i++
		case p.less(v, k):
			gt--
			p.swap(i, gt)
		default:
			i++
		}
	}
	return lt, gt
}

// selectKth moves the index whose key has rank k to position k, with
// no key before it ordered after it and no key after it ordered before
// it. Runs in expected linear time, including when keys repeat.
func (p plane[T, F]) selectKth(k int) {
	for len(p.idx) > 1 {
		lt, gt := p.partition(rand.IntN(len(p.idx)))
		switch {
		case k < lt:
			p.idx = p.idx[:lt]
		case k >= gt:
			p.idx = p.idx[gt:]
			k -= gt
		default:
			return
		}
	}
}

// A span is a pending construction work item: the half-open range
// [lo, hi) of the index permutation from which a subtree is to be built
// at the given depth, and the arena slot of the parent to attach it to.
type span struct {
	lo, hi int
	depth  int
	parent int
	right  bool
}

// build constructs the node arena by recursive median splitting, using
// an explicit stack instead of the call stack.
//
// The split axis cycles with depth. For each span the index at position
// (lo+hi)/2 becomes the node, with every index before it having a
// coordinate on the split axis no greater than the node's and every
// index after it no less. Which of several equal coordinates ends up at
// the median is not defined, so neither is the shape of the tree when
// coordinates repeat.
func (t *Tree[T, F]) build() {
	n := len(t.points)
	if n == 0 {
		return
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	t.nodes = make([]node, 0, n)
	s := stack[span]{{lo: 0, hi: n, parent: none}}
	for len(s) > 0 {
		sp := s.pop()
		mid := (sp.lo + sp.hi) / 2
		p := plane[T, F]{
			idx:    idx[sp.lo:sp.hi],
			points: t.points,
			coord:  t.coord,
			less:   t.less,
			axis:   sp.depth % t.dims,
		}
		p.selectKth(mid - sp.lo)

		id := len(t.nodes)
		t.nodes = append(t.nodes, node{index: idx[mid], left: none, right: none})
		if sp.parent != none {
			if sp.right {
				t.nodes[sp.parent].right = id
			} else {
				t.nodes[sp.parent].left = id
			}
		}
		if sp.depth+1 > t.height {
			t.height = sp.depth + 1
		}

		// Push right first so that the left subtree is built first and
		// the arena is laid out in pre-order.
		if mid+1 < sp.hi {
			s.push(span{lo: mid + 1, hi: sp.hi, depth: sp.depth + 1, parent: id, right: true})
		}
		if sp.lo < mid {
			s.push(span{lo: sp.lo, hi: mid, depth: sp.depth + 1, parent: id})
		}
	}
}
