// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

// maxMinRun bounds the minimum run length computed by minRunLength.
// Runs shorter than the minimum are extended with insertionSort.
const maxMinRun = 32

// A run is a non-empty sub-slice x[first:last) that is ascending
// (non-decreasing) under the comparison function.
type run struct {
	first, last int
}

func (r run) length() int { return r.last - r.first }

// detectRun returns the smallest p > first such that x[first:p) is a
// maximal monotonic run starting at first, reversing the run in place
// if it was descending. The descending branch requires strict descent:
// reversing a run with equal neighbors would reorder equal elements.
func detectRun[E any](x []E, first, last int, less func(a, b E) bool) int {
	p := first + 1
	if p == last {
		return p
	}
	if less(x[p], x[p-1]) { // strictly descending
		for p++; p < last && less(x[p], x[p-1]); p++ {
		}
		reverseRun(x, first, p)
	} else { // ascending
		for p++; p < last && !less(x[p], x[p-1]); p++ {
		}
	}
	return p
}

func reverseRun[E any](x []E, first, last int) {
	for last--; first < last; first, last = first+1, last-1 {
		x[first], x[last] = x[last], x[first]
	}
}

// insertionSort sorts x[first:last) by binary insertion, assuming
// x[first:start) is already sorted. The insertion point is the upper
// bound of the inserted element, which keeps equal elements in their
// original order.
func insertionSort[E any](x []E, first, last, start int, less func(a, b E) bool) {
	if start == first {
		start++
	}
	for ; start < last; start++ {
		v := x[start]
		j := upperBound(x, first, start, v, less)
		copy(x[j+1:start+1], x[j:start])
		x[j] = v
	}
}

// minRunLength returns the minimum length of a run fed to the merge
// policy for an input of length n. For n < 32 it returns n. Otherwise
// it returns a value in [16, 32] such that n divided by the result is
// close to, but not over, a power of two, which keeps the final merge
// tree balanced.
func minRunLength(n int) int {
	bumper := 0
	for n >= maxMinRun {
		bumper |= n & 1
		n >>= 1
	}
	return n + bumper
}
