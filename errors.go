// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree is returned when searching a Tree built from zero
	// points.
	ErrEmptyTree = textErr("empty tree")
	// ErrInvalidK is returned when a k-nearest-neighbour search is
	// given a neighbour count less than 1.
	ErrInvalidK = textErr("k must be positive")
	// ErrInvalidRadius is returned when a radius search is given a
	// negative or NaN radius.
	ErrInvalidRadius = textErr("radius must be a non-negative number")
)

// ErrDimensionMismatch indicates that a point or query does not have
// the number of coordinates the Tree was built with. It is only
// produced by trees created with NewSlices, since an Accessor gives no
// way to count a point's coordinates.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

const packageName = "kdtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
