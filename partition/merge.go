/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package partition

import "github.com/launix-de/parapartition/internal/pool"

// mergeUnstable combines two adjacent partitionRanges into one, without
// preserving relative order within either side.
//
// Between l.pivot and r.pivot the slice reads (l-falses, r-trues): l's
// false suffix directly followed by r's true prefix. Swapping the shorter
// of the two against the boundary restores (trues, falses) for the
// combined range. The two blocks being swapped never overlap and no other
// merge touches them, so the swap is safe to run in parallel.
//
// merge(merge(A,B),C) and merge(A,merge(B,C)) both produce a
// partitionRange spanning A.begin..C.end with the same pivot (the total
// count of trues never changes, only which physical slots hold them) -
// that's what lets the reduce drivers fold in any tree shape.
func mergeUnstable[T any](s []T, grainSize int, l, r partitionRange) partitionRange {
	if !l.adjacent(r) {
		panic("partition: merge of non-adjacent ranges")
	}

	s1 := l.end - l.pivot // l's false suffix
	s2 := r.pivot - r.begin // r's true prefix

	if s1 == 0 {
		return partitionRange{l.begin, r.pivot, r.end}
	}

	if s2 > s1 {
		a, b, n := l.pivot, r.pivot-s1, s1
		parallelSwap(s, grainSize, a, n, b)
		return partitionRange{l.begin, r.pivot - s1, r.end}
	}

	a, b, n := l.pivot, r.begin, s2
	parallelSwap(s, grainSize, a, n, b)
	return partitionRange{l.begin, l.pivot + s2, r.end}
}

// unstableCombiner binds grainSize into a combineFn so the reduce drivers
// (which know nothing about swap chunking) can treat mergeUnstable the same
// way they treat mergeStable.
func unstableCombiner[T any](grainSize int) combineFn[T] {
	return func(s []T, l, r partitionRange) partitionRange {
		return mergeUnstable(s, grainSize, l, r)
	}
}

// parallelSwap splits swapBlocks(s, a, n, b) into grain-sized sub-swaps run
// across the worker pool. The two blocks are disjoint by construction (they
// are the false suffix of one partitioned range and the true prefix of its
// adjacent neighbor), so sub-ranges of them never race with each other.
func parallelSwap[T any](s []T, grainSize, a, n, b int) {
	if n <= 0 {
		return
	}
	delta := b - a
	err := pool.For(0, n, grainSize, func(i, j int) {
		swapBlocks(s, a+i, j-i, a+i+delta)
	})
	if err != nil {
		// body never returns an error; a non-nil error here would be a bug
		// in the pool, not something callers can recover from.
		panic(err)
	}
}
