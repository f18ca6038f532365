// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides an immutable k-d tree spatial index over a
// caller-owned slice of points, together with exact nearest-neighbour,
// k-nearest-neighbour and fixed-radius searches.
//
// A Tree never copies the points it indexes. It stores positions into
// the slice passed to New, and every search returns positions into
// that same slice. The point type is arbitrary: coordinates are read
// through an Accessor supplied by the caller.
//
//	pts := [][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
//	tree := kdtree.New(pts, 2, kdtree.SliceCoord[float64])
//	i, err := tree.Nearest([]float64{9, 2}) // i == 4, pts[4] == {8, 1}
//
// Distances are squared Euclidean distances throughout, except for the
// radius argument to WithinRadius, which is given in linear units.
//
// Once built, a Tree is safe for concurrent searches as long as the
// Accessor is pure and the point slice is left untouched.
package kdtree
