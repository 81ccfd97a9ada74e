// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timsort implements a stable, adaptive, natural mergesort
// over slices of any element type.
//
// The algorithm detects the ascending and descending runs the input
// already contains and merges them under a balance policy, so nearly
// sorted inputs sort in close to N comparisons while random inputs
// keep the usual O(N log N) bound. Equal elements retain their
// original order. The sort allocates a scratch buffer of at most
// len(x)/2 elements; the input slice is modified in place.
package timsort

import "golang.org/x/exp/constraints"

// Sort sorts the slice x in ascending order while keeping the
// original order of equal elements.
func Sort[E constraints.Ordered](x []E) {
	SortFunc(x, func(a, b E) bool { return a < b })
}

// SortFunc sorts the slice x in ascending order as determined by the
// less function, keeping the original order of elements that compare
// equal. less must describe a strict weak ordering; the output is
// undefined if it does not.
func SortFunc[E any](x []E, less func(a, b E) bool) {
	if len(x) < 2 {
		return
	}
	newMergeState(x, less).sort()
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether x is sorted in ascending order, with
// less as the comparison function.
func IsSortedFunc[E any](x []E, less func(a, b E) bool) bool {
	for i := len(x) - 1; i > 0; i-- {
		if less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// BinarySearch searches for target in a sorted slice and returns the
// smallest index i for which x[i] >= target. If target is not present,
// that is the index at which it would be inserted; if every element is
// less than target, it returns len(x).
func BinarySearch[E constraints.Ordered](x []E, target E) int {
	return lowerBound(x, 0, len(x), target, func(a, b E) bool { return a < b })
}

// BinarySearchFunc searches in a sorted slice and returns the
// smallest index at which ok(x[i]) is true, assuming ok is false for
// a prefix of x and true for the remainder. If there is no such
// index, it returns len(x).
func BinarySearchFunc[E any](x []E, ok func(E) bool) int {
	// Invariant: !ok(x[i]) for i < first, ok(x[j]) for j >= last.
	first, last := 0, len(x)
	for first < last {
		h := int(uint(first+last) >> 1) // avoid overflow when computing h
		if !ok(x[h]) {
			first = h + 1
		} else {
			last = h
		}
	}
	return first
}
