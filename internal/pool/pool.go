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

// Package pool supplies the two scheduling primitives the partition driver
// consumes as external collaborators: a bounded parallel-for over an index
// range, and a fork-join slot semaphore used by the reduce drivers to cap
// how many goroutines are in flight at once.
//
// Sizing follows the same idiom as launix-de-memcp's storage/limits.go: a
// buffered channel pre-filled with tokens, one per worker.
package pool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers is the default number of concurrent workers used by both the
// parallel-for and the fork-join reduce drivers. It mirrors runtime.NumCPU,
// clamped to at least 1, the same guard storage/limits.go applies to its
// load-slot semaphore.
func Workers() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

// Slots is a counting semaphore of fork-join worker tokens. TryAcquire
// claims a free token without blocking; Release returns it. A driver that fails to
// acquire a token (TryAcquire returns false) falls back to running its work
// inline - the same non-blocking fallback storage/limits.go would need if
// it ever ran out of load slots under contention.
type Slots struct {
	tokens chan struct{}
}

// NewSlots builds a semaphore with n tokens, pre-filled like loadSemaphore.
func NewSlots(n int) *Slots {
	if n < 1 {
		n = 1
	}
	s := &Slots{tokens: make(chan struct{}, n)}
	for i := 0; i < n; i++ {
		s.tokens <- struct{}{}
	}
	return s
}

// TryAcquire claims a token without blocking. It reports whether it got one.
func (s *Slots) TryAcquire() bool {
	select {
	case <-s.tokens:
		return true
	default:
		return false
	}
}

// Release returns a token claimed by TryAcquire.
func (s *Slots) Release() {
	s.tokens <- struct{}{}
}

// For runs body(i, j) for each of the grain-sized sub-ranges of [begin,end),
// bounded to Workers() concurrent calls via errgroup.SetLimit. It blocks
// until every sub-range has run. body cannot report an error, so the
// returned error is always nil.
//
// This is the parallel-for the unstable merge (merge.go) uses to split its
// cross-boundary swap across the pool; grounded on the errgroup.WithContext
// + SetLimit worker-pool pattern in
// junjiewwang-perf-analysis/internal/parser/hprof/parallel.go.
func For(begin, end, grainSize int, body func(i, j int)) error {
	if grainSize < 1 {
		grainSize = 1
	}
	var g errgroup.Group
	g.SetLimit(Workers())
	for i := begin; i < end; i += grainSize {
		j := i + grainSize
		if j > end {
			j = end
		}
		i, j := i, j
		g.Go(func() error {
			body(i, j)
			return nil
		})
	}
	return g.Wait()
}
