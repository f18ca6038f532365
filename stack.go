// Copyright 2023 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

// A stack holds the pending work items of an iterative tree walk. Both
// construction and search use one in place of recursion, so the depth
// of a tree never translates into call stack depth.
type stack[E any] []E

func (s *stack[E]) push(e E) {
	*s = append(*s, e)
}

func (s *stack[E]) pop() E {
	old := *s
	n := len(old)
	x := old[n-1]
	*s = old[0 : n-1]
	return x
}
