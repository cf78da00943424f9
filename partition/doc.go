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

// Package partition rearranges a slice in place so that every element
// satisfying a predicate precedes every element that does not, splitting
// the work across goroutines.
//
// Four entry points are exported: Partition and PartitionDeterministic
// (no guarantee on relative order within either side) and StablePartition
// and StablePartitionDeterministic (relative order within each side is
// preserved). The deterministic variants always split the input and combine
// the pieces the same way for a given length and grain size, so repeated
// runs - on any number of CPUs - return the same pivot, and for the stable
// variant, the identical arrangement.
//
// All four work by splitting the slice into grain-sized chunks, partitioning
// each chunk sequentially, and folding the per-chunk results back together
// with a boundary swap (unstable) or a rotation (stable). The fold is the
// part that has to stay correct under arbitrary parallel scheduling; see
// merge.go and stablemerge.go.
package partition
