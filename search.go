// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"sort"

	"github.com/gogama/kdtree/maxheap"
)

// Result is a single search result.
type Result[F Number] struct {
	// Index is the position of the matching point in the slice the Tree
	// was built from.
	Index int
	// Dist is the squared Euclidean distance from the query to the
	// matching point.
	Dist F
}

// Results is a slice of Result structures which implements
// sort.Interface. The sort.Sort function will sort Results in
// ascending order of Result.Dist, breaking ties by Result.Index.
type Results[F Number] []Result[F]

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results[F]) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by ascending Result.Dist and
// then ascending Result.Index. It implements the corresponding method
// of sort.Interface.
func (rs Results[F]) Less(i, j int) bool {
	if rs[i].Dist != rs[j].Dist {
		return rs[i].Dist < rs[j].Dist
	}
	return rs[i].Index < rs[j].Index
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results[F]) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// Indices returns the Index of every Result, in the same order.
func (rs Results[F]) Indices() []int {
	idx := make([]int, len(rs))
	for i := range rs {
		idx[i] = rs[i].Index
	}
	return idx
}

// A ticket is a pending node visit during a search.
type ticket[F Number] struct {
	// node is the arena position of the node to visit.
	node int
	// depth is the node's depth, from which its split axis follows.
	depth int
	// far is set if the node is the root of a subtree on the opposite
	// side of its parent's splitting hyperplane from the query. Such a
	// visit may be pruned.
	far bool
	// plane is the squared distance from the query to the parent's
	// splitting hyperplane. It is only meaningful if far is set.
	plane F
}

// walk performs a depth-first branch-and-bound traversal of a non-empty
// Tree on behalf of query q.
//
// At every node, walk calls visit with the node's point index and its
// squared distance from q, then descends into the child on q's side of
// the splitting hyperplane. The child on the other side is only
// descended into once the near subtree has been fully walked, and only
// if prune returns false for the squared distance between q and the
// hyperplane. Deferring the check until then lets prune see the
// tightest bound the near subtree could produce.
func (t *Tree[T, F]) walk(q T, visit func(index int, dist F), prune func(plane F) bool) {
	s := make(stack[ticket[F]], 1, t.height+1)
	for len(s) > 0 {
		tk := s.pop()
		if tk.far && prune(tk.plane) {
			continue
		}

		n := &t.nodes[tk.node]
		p := t.points[n.index]
		visit(n.index, t.SquaredDistance(q, p))

		axis := tk.depth % t.dims
		qc, pc := t.coord(q, axis), t.coord(p, axis)
		near, far := n.left, n.right
		if !t.less(qc, pc) {
			near, far = n.right, n.left
		}
		if far != none {
			d := qc - pc
			s.push(ticket[F]{node: far, depth: tk.depth + 1, far: true, plane: d * d})
		}
		if near != none {
			s.push(ticket[F]{node: near, depth: tk.depth + 1})
		}
	}
}

// validate checks that a Tree can be searched for q.
func (t *Tree[T, F]) validate(q T) error {
	if t.check != nil {
		if err := t.check(q); err != nil {
			return wrapErr("query", err)
		}
	}
	if len(t.nodes) == 0 {
		return ErrEmptyTree
	}
	return nil
}

// isNaN reports whether x is a floating point NaN, the only value which
// is not equal to itself.
func isNaN[F Number](x F) bool {
	return x != x
}

// NearestResult finds the point closest to q. If several points are
// equally close, which of them is returned is not defined.
//
// Returns ErrEmptyTree if the Tree is empty.
func (t *Tree[T, F]) NearestResult(q T) (Result[F], error) {
	if err := t.validate(q); err != nil {
		return Result[F]{Index: none}, err
	}

	best := Result[F]{Index: none}
	t.walk(q,
		func(index int, dist F) {
			if best.Index == none || dist < best.Dist {
				best = Result[F]{Index: index, Dist: dist}
			}
		},
		func(plane F) bool {
			return !(plane < best.Dist)
		})

	return best, nil
}

// Nearest returns the index of the point closest to q. See
// NearestResult. On error the returned index is -1.
func (t *Tree[T, F]) Nearest(q T) (int, error) {
	r, err := t.NearestResult(q)
	return r.Index, err
}

// KNearestResults finds the min(k, Len()) points closest to q, sorted
// by ascending distance. Ties at the k-th distance are broken
// arbitrarily.
//
// Returns ErrInvalidK if k is less than 1 and ErrEmptyTree if the Tree
// is empty.
func (t *Tree[T, F]) KNearestResults(q T, k int) (Results[F], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if err := t.validate(q); err != nil {
		return nil, err
	}

	h := maxheap.New[F](min(k, len(t.nodes)))
	t.walk(q,
		func(index int, dist F) {
			h.Push(maxheap.Item[F]{Key: dist, Index: index})
		},
		func(plane F) bool {
			top, _ := h.Max()
			return h.Full() && !(plane < top.Key)
		})

	rs := make(Results[F], 0, h.Len())
	for x := range h.All() {
		rs = append(rs, Result[F]{Index: x.Index, Dist: x.Key})
	}
	sort.Sort(rs)
	return rs, nil
}

// KNearest returns the indices of the min(k, Len()) points closest to
// q. The order of the indices is not defined. See KNearestResults.
func (t *Tree[T, F]) KNearest(q T, k int) ([]int, error) {
	rs, err := t.KNearestResults(q, k)
	if err != nil {
		return nil, err
	}
	return rs.Indices(), nil
}

// WithinRadiusResults finds every point whose distance from q is
// strictly less than r. A point at exactly distance r is excluded. The
// radius is in linear units and is squared internally. Results are in
// traversal order, not distance order.
//
// Returns ErrInvalidRadius if r is negative or NaN and ErrEmptyTree if
// the Tree is empty.
func (t *Tree[T, F]) WithinRadiusResults(q T, r F) (Results[F], error) {
	if r < 0 || isNaN(r) {
		return nil, ErrInvalidRadius
	}
	if err := t.validate(q); err != nil {
		return nil, err
	}

	r2 := r * r
	rs := make(Results[F], 0)
	t.walk(q,
		func(index int, dist F) {
			if dist < r2 {
				rs = append(rs, Result[F]{Index: index, Dist: dist})
			}
		},
		func(plane F) bool {
			return !(plane < r2)
		})

	return rs, nil
}

// WithinRadius returns the indices of every point whose distance from q
// is strictly less than r. See WithinRadiusResults.
func (t *Tree[T, F]) WithinRadius(q T, r F) ([]int, error) {
	rs, err := t.WithinRadiusResults(q, r)
	if err != nil {
		return nil, err
	}
	return rs.Indices(), nil
}
