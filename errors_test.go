// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("textErr", func(t *testing.T) {
		assert.EqualError(t, textErr("foo"), "kdtree: foo")
	})

	t.Run("wrapErr", func(t *testing.T) {
		cause := errors.New("the root cause")
		err := wrapErr("the error is %q by", cause, "caused")

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, `kdtree: the error is "caused" by: the root cause`, err.Error())
	})

	t.Run("textPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "kdtree: foo", func() {
			textPanic("foo")
		})
	})

	t.Run("fmtPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "kdtree: my bar is baz-ed to 10", func() {
			fmtPanic("my %s is %s-ed to %d", "bar", "baz", 10)
		})
	})

	t.Run("Sentinels", func(t *testing.T) {
		assert.EqualError(t, ErrEmptyTree, "kdtree: empty tree")
		assert.EqualError(t, ErrInvalidK, "kdtree: k must be positive")
		assert.EqualError(t, ErrInvalidRadius, "kdtree: radius must be a non-negative number")
	})

	t.Run("ErrDimensionMismatch", func(t *testing.T) {
		var err error = &ErrDimensionMismatch{Expected: 3, Actual: 2}
		wrapped := wrapErr("query", err)

		assert.EqualError(t, err, "dimension mismatch: expected 3, got 2")
		var dm *ErrDimensionMismatch
		if assert.ErrorAs(t, wrapped, &dm) {
			assert.Equal(t, 3, dm.Expected)
			assert.Equal(t, 2, dm.Actual)
		}
	})
}
