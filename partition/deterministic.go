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

import (
	"sync"

	"github.com/launix-de/parapartition/internal/pool"
)

// reduceDeterministic partitions s[begin:end] the same way
// reduceNondeterministic does, except the combine tree is a fixed function
// of the leaf count alone: a balanced binary tree over leaf *indices*, built
// by recursive midpoint bisection. Which goroutine happens to compute which
// leaf, and which subtree combine happens to finish first, can still vary
// run to run - but neither affects the tree's shape, so the result (pivot
// for both variants, full arrangement for the stable one) never does.
func reduceDeterministic[T any](s []T, begin, end, grainSize int, leaf leafFn[T], pred func(T) bool, combine combineFn[T], stats *Stats) partitionRange {
	if begin >= end {
		return identityRange(end)
	}

	leaves := splitLeaves(begin, end, grainSize)
	results := make([]partitionRange, len(leaves))
	slots := pool.NewSlots(pool.Workers())
	var wg sync.WaitGroup
	var guard panicGuard

	runLeaf := func(i int) {
		defer func() {
			if r := recover(); r != nil {
				guard.set(r)
			}
		}()
		lf := leaves[i]
		pivot := leaf(s, lf.begin, lf.end, pred)
		stats.addLeaf()
		results[i] = partitionRange{lf.begin, pivot, lf.end}
	}

	for i := range leaves {
		i := i
		if slots.TryAcquire() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer slots.Release()
				runLeaf(i)
			}()
		} else {
			runLeaf(i)
		}
	}
	wg.Wait()
	guard.check()

	return combineBalanced(s, results, 0, len(results), slots, combine, stats)
}

// combineBalanced folds results[lo:hi] via a fixed balanced binary tree over
// leaf indices: split at the midpoint, combine each half (possibly on its
// own goroutine, budget permitting), then combine the two halves. The
// midpoint depends only on lo and hi, never on timing, so repeated calls
// with the same leaf count always build the identical tree.
func combineBalanced[T any](s []T, results []partitionRange, lo, hi int, slots *pool.Slots, combine combineFn[T], stats *Stats) partitionRange {
	if hi-lo == 1 {
		return results[lo]
	}
	mid := lo + (hi-lo)/2

	var left partitionRange
	var right partitionRange

	if slots.TryAcquire() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer slots.Release()
			right = combineBalanced(s, results, mid, hi, slots, combine, stats)
		}()
		left = combineBalanced(s, results, lo, mid, slots, combine, stats)
		wg.Wait()
	} else {
		left = combineBalanced(s, results, lo, mid, slots, combine, stats)
		right = combineBalanced(s, results, mid, hi, slots, combine, stats)
	}

	stats.addMerge()
	return combine(s, left, right)
}
