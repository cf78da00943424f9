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

import "sync/atomic"

// Stats counts work performed by a single driver call. Every field is a
// plain atomic counter updated from whichever goroutine finishes the work,
// the same "atomic, no mutex" idiom scm/metrics.go uses for its HTTP
// connection counters - there is no background sampler here, callers read
// the counters directly once the call returns.
type Stats struct {
	Leaves int64 // number of leaf chunks sequentially partitioned
	Merges int64 // number of mergeUnstable/mergeStable combine steps performed
}

func (s *Stats) addLeaf() {
	if s != nil {
		atomic.AddInt64(&s.Leaves, 1)
	}
}

func (s *Stats) addMerge() {
	if s != nil {
		atomic.AddInt64(&s.Merges, 1)
	}
}
