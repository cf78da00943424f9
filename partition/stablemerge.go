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

// mergeStable combines two adjacent partitionRanges into one, preserving
// relative order within each side.
//
// The contiguous middle [l.pivot, r.pivot) reads (l-falses, r-trues): l's
// trues are already in front and r's falses are already at the back, so
// rotating just that middle segment to (r-trues, l-falses) leaves the
// whole [l.begin, r.end) partitioned with every element's relative order
// preserved. Because the result is the unique arrangement with that
// property, the same final layout comes out regardless of which tree shape
// the reduce driver used to get here - only the deterministic drivers fix
// *which* rotate calls happen and in what order, not the outcome.
//
// Unlike mergeUnstable, this does not parallelize internally: the rotate is
// O(k) sequential swaps over the combined false/true run. Parallelism here
// comes only from running independent merges of the reduce tree concurrently.
func mergeStable[T any](s []T, l, r partitionRange) partitionRange {
	if !l.adjacent(r) {
		panic("partition: merge of non-adjacent ranges")
	}

	falseLen := l.end - l.pivot
	if l.pivot == l.end {
		return partitionRange{l.begin, r.pivot, r.end}
	}

	rotate(s, l.pivot, r.begin, r.pivot)
	return partitionRange{l.begin, r.pivot - falseLen, r.end}
}
