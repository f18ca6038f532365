// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of coordinate types a Tree can index. Unsigned
// integers are excluded because the difference between two coordinates
// may be negative.
//
// Integer coordinates are supported, but the caller must ensure that
// squared distances between points cannot overflow.
type Number interface {
	constraints.Signed | constraints.Float
}

// An Accessor returns the coordinate of point p on the given axis. A
// Tree only calls its Accessor with axis in [0, Dims()).
//
// An Accessor must be pure: repeated calls with the same arguments must
// return the same value and have no side effects. Search pruning is
// only correct if this holds, and concurrent searches additionally
// require the Accessor to be safe for concurrent use.
type Accessor[T any, F Number] func(p T, axis int) F

// SliceCoord is the Accessor for points represented as coordinate
// slices.
func SliceCoord[F Number](p []F, axis int) F {
	return p[axis]
}

// A node is a single node in a Tree's arena. It refers to a point by
// its position in the indexed slice and to its children by their
// positions in the arena.
type node struct {
	index       int
	left, right int
}

// none marks an absent child node, or the absence of a search result.
const none = -1

// Tree is an immutable k-d tree over a caller-owned slice of points.
//
// The Tree borrows the slice passed to New and only ever indexes the
// points it held at construction. Elements appended later are never
// searched, and if appending reallocates the slice the Tree keeps
// reading the old backing array. Reordering the elements or changing
// their coordinates silently invalidates the Tree, which will then
// return wrong answers.
type Tree[T any, F Number] struct {
	points []T
	coord  Accessor[T, F]
	less   func(a, b F) bool
	dims   int
	// nodes is the tree, stored in construction order, so that the root
	// is nodes[0]. It is empty if and only if points is empty.
	nodes  []node
	height int
	// check validates the dimensionality of a query. It is nil unless
	// the Tree was created by NewSlices.
	check func(q T) error
}

func validateDims(dims int) {
	if dims < 1 {
		fmtPanic("dims must be at least 1, got %d", dims)
	}
}

// New builds a Tree over points, which have dims coordinates each, read
// through coord. Coordinates are ordered numerically, as by cmp.Less.
//
// Panics if dims is less than 1 or coord is nil. An empty (or nil)
// points slice produces an empty Tree which can be built but not
// searched.
func New[T any, F Number](points []T, dims int, coord Accessor[T, F], opts ...Option) *Tree[T, F] {
	return NewFunc(points, dims, coord, cmp.Less[F], opts...)
}

// NewFunc is like New but orders coordinates on every axis using the
// less function, which must be a strict weak ordering. The ordering
// decides which side of a split each point is placed on and which
// child a search explores first. It does not change search results.
//
// Panics if dims is less than 1, or coord or less is nil.
func NewFunc[T any, F Number](points []T, dims int, coord Accessor[T, F], less func(a, b F) bool, opts ...Option) *Tree[T, F] {
	validateDims(dims)
	if coord == nil {
		textPanic("nil accessor")
	} else if less == nil {
		textPanic("nil less function")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree[T, F]{
		points: points,
		coord:  coord,
		less:   less,
		dims:   dims,
	}
	t.build()

	o.logger.Debug("kdtree built",
		"points", len(points),
		"dims", dims,
		"height", t.height,
	)

	return t
}

// NewSlices builds a Tree over points represented as coordinate slices.
// Every point must have exactly dims coordinates, otherwise an error
// wrapping *ErrDimensionMismatch is returned. Searches on the returned
// Tree likewise reject queries with the wrong number of coordinates.
//
// Panics if dims is less than 1.
func NewSlices[F Number](points [][]F, dims int, opts ...Option) (*Tree[[]F, F], error) {
	validateDims(dims)
	for i := range points {
		if len(points[i]) != dims {
			return nil, wrapErr("point %d", &ErrDimensionMismatch{Expected: dims, Actual: len(points[i])}, i)
		}
	}

	t := NewFunc[[]F, F](points, dims, SliceCoord[F], cmp.Less[F], opts...)
	t.check = func(q []F) error {
		if len(q) != dims {
			return &ErrDimensionMismatch{Expected: dims, Actual: len(q)}
		}
		return nil
	}

	return t, nil
}

// Len returns the number of points indexed by the Tree, which is also
// its node count.
func (t *Tree[T, F]) Len() int {
	return len(t.nodes)
}

// Dims returns the number of coordinates per point.
func (t *Tree[T, F]) Dims() int {
	return t.dims
}

// Height returns the number of nodes on the longest path from the root
// to a leaf, or zero for an empty Tree.
func (t *Tree[T, F]) Height() int {
	return t.height
}

// SquaredDistance returns the squared Euclidean distance between a and
// b, read through the Tree's Accessor.
func (t *Tree[T, F]) SquaredDistance(a, b T) F {
	var d F
	for axis := 0; axis < t.dims; axis++ {
		diff := t.coord(a, axis) - t.coord(b, axis)
		d += diff * diff
	}
	return d
}

// String returns a summary description of the Tree.
func (t *Tree[T, F]) String() string {
	return fmt.Sprintf("Tree{Len:%d,Dims:%d,Height:%d}", t.Len(), t.dims, t.height)
}
