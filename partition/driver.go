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

// leafSpan is one grain-sized chunk of the input, before it has been
// partitioned.
type leafSpan struct {
	begin, end int
}

// splitLeaves chunks [begin,end) into leaves of exactly grainSize elements,
// the last one possibly shorter. Both the nondeterministic and the
// deterministic driver call this same function - what differs between them
// is only how the leaves' results get folded back together, not how the
// input is cut up. This mirrors original_source/pstl_partition.h's choice
// to benchmark both drivers through the same tbb::simple_partitioner.
func splitLeaves(begin, end, grainSize int) []leafSpan {
	if grainSize < 1 {
		grainSize = 1
	}
	if begin >= end {
		return nil
	}
	n := end - begin
	count := (n + grainSize - 1) / grainSize
	leaves := make([]leafSpan, count)
	for i := range leaves {
		b := begin + i*grainSize
		e := b + grainSize
		if e > end {
			e = end
		}
		leaves[i] = leafSpan{b, e}
	}
	return leaves
}

// combineFn merges two adjacent partitionRanges produced over the same
// slice. Both mergeUnstable and mergeStable have this shape.
type combineFn[T any] func(s []T, l, r partitionRange) partitionRange

// leafFn sequentially partitions s[begin:end] and reports the local pivot.
// Both sequentialPartition and sequentialStablePartition have this shape.
type leafFn[T any] func(s []T, begin, end int, pred func(T) bool) int

// frontier folds partitionRanges together as soon as two of them turn out
// to be physically adjacent, regardless of the order they arrive in. That
// arrival order depends on which goroutine the scheduler happens to run
// next, which is exactly the "work-stealing / nondeterministic" combine
// order spec.md describes: the number of merges performed is the same every
// run (one fewer than the number of leaves) and associativity makes the
// resulting pivot the same, but which pairs merge, and in what order, is
// not.
//
// This generalizes the "reduce values as they become ready" idea in
// par.Map/par.Reduce (a channel fed by each worker, drained by the caller)
// to an operation that - unlike a plain commutative accumulator - requires
// its two operands to be physically adjacent (l.end == r.begin). A plain
// arrival-order fold would violate that precondition whenever two
// non-neighboring chunks finish next to each other in time; tracking
// pending ranges by their begin/end index and only combining genuine
// neighbors keeps every combine step legal no matter the arrival order.
type frontier[T any] struct {
	mu      sync.Mutex
	byBegin map[int]partitionRange
	byEnd   map[int]partitionRange
	combine combineFn[T]
	stats   *Stats
}

func newFrontier[T any](combine combineFn[T], stats *Stats) *frontier[T] {
	return &frontier[T]{
		byBegin: make(map[int]partitionRange),
		byEnd:   make(map[int]partitionRange),
		combine: combine,
		stats:   stats,
	}
}

// add folds r into whatever adjacent ranges have already arrived.
func (f *frontier[T]) add(s []T, grainSize int, r partitionRange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for {
		if left, ok := f.byEnd[r.begin]; ok {
			delete(f.byEnd, left.end)
			delete(f.byBegin, left.begin)
			r = f.combine(s, left, r)
			f.stats.addMerge()
			continue
		}
		if right, ok := f.byBegin[r.end]; ok {
			delete(f.byBegin, right.begin)
			delete(f.byEnd, right.end)
			r = f.combine(s, r, right)
			f.stats.addMerge()
			continue
		}
		break
	}
	f.byBegin[r.begin] = r
	f.byEnd[r.end] = r
}

// result returns the single surviving range. Valid only after every leaf has
// been added and no two pending ranges are adjacent anymore - i.e. after all
// of them have collapsed into one.
func (f *frontier[T]) result() partitionRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byBegin {
		return r
	}
	panic("partition: frontier has no ranges to report")
}

// reduceNondeterministic partitions s[begin:end] by splitting it into leaves,
// computing each leaf on the worker pool (falling back to running inline
// when every worker slot is taken), and folding results into a frontier as
// they complete. The fork/no-fork decision for each leaf depends on live
// slot availability, so the shape of the combine tree - and therefore the
// exact sequence of swaps an unstable merge performs - varies from run to
// run even though the returned pivot never does.
func reduceNondeterministic[T any](s []T, begin, end, grainSize int, leaf leafFn[T], pred func(T) bool, combine combineFn[T], stats *Stats) partitionRange {
	if begin >= end {
		return identityRange(end)
	}

	leaves := splitLeaves(begin, end, grainSize)
	fr := newFrontier[T](combine, stats)
	slots := pool.NewSlots(pool.Workers())
	var wg sync.WaitGroup
	var guard panicGuard

	runLeaf := func(lf leafSpan) {
		defer func() {
			if r := recover(); r != nil {
				guard.set(r)
			}
		}()
		pivot := leaf(s, lf.begin, lf.end, pred)
		stats.addLeaf()
		fr.add(s, grainSize, partitionRange{lf.begin, pivot, lf.end})
	}

	for _, lf := range leaves {
		lf := lf
		if slots.TryAcquire() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer slots.Release()
				runLeaf(lf)
			}()
		} else {
			runLeaf(lf)
		}
	}
	wg.Wait()
	guard.check()

	return fr.result()
}
