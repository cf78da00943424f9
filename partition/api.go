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

// DefaultGrainSize is used whenever a caller passes grainSize <= 0.
const DefaultGrainSize = 1000

func grainOrDefault(grainSize int) int {
	if grainSize <= 0 {
		return DefaultGrainSize
	}
	return grainSize
}

// Partition rearranges s so that every element satisfying pred precedes
// every element that does not, and returns the boundary: s[:p] all satisfy
// pred, s[p:] do not. Relative order within either side is not preserved.
//
// pred may be called concurrently from multiple goroutines, once per
// element; it must be side-effect-free. grainSize is the number of elements
// in each chunk partitioned by a single goroutine (the last chunk may be
// shorter); grainSize <= 0 uses DefaultGrainSize. The split/combine schedule is not reproducible
// across runs - for that, use PartitionDeterministic.
func Partition[T any](s []T, pred func(T) bool, grainSize int) int {
	return PartitionWithStats(s, pred, grainSize, nil)
}

// PartitionWithStats is Partition, except it additionally accounts the
// leaves and merges it performs into stats. stats may be nil, in which case
// it behaves exactly like Partition.
func PartitionWithStats[T any](s []T, pred func(T) bool, grainSize int, stats *Stats) int {
	r := reduceNondeterministic(s, 0, len(s), grainOrDefault(grainSize), sequentialPartition[T], pred, unstableCombiner[T](grainOrDefault(grainSize)), stats)
	return r.pivot
}

// PartitionDeterministic is Partition, except the split/combine schedule is
// a fixed function of len(s) and grainSize: repeated calls with the same
// slice contents, predicate and grainSize return the same pivot regardless
// of GOMAXPROCS or scheduler timing. The arrangement of elements within
// each side is still unspecified.
func PartitionDeterministic[T any](s []T, pred func(T) bool, grainSize int) int {
	return PartitionDeterministicWithStats(s, pred, grainSize, nil)
}

// PartitionDeterministicWithStats is PartitionDeterministic, except it
// additionally accounts the leaves and merges it performs into stats. stats
// may be nil, in which case it behaves exactly like PartitionDeterministic.
func PartitionDeterministicWithStats[T any](s []T, pred func(T) bool, grainSize int, stats *Stats) int {
	r := reduceDeterministic(s, 0, len(s), grainOrDefault(grainSize), sequentialPartition[T], pred, unstableCombiner[T](grainOrDefault(grainSize)), stats)
	return r.pivot
}

// StablePartition is Partition, except the relative order of elements
// within each side is preserved: the subsequence of pred-true elements (and
// separately, of pred-false elements) in the output equals that subsequence
// in the input.
func StablePartition[T any](s []T, pred func(T) bool, grainSize int) int {
	return StablePartitionWithStats(s, pred, grainSize, nil)
}

// StablePartitionWithStats is StablePartition, except it additionally
// accounts the leaves and merges it performs into stats. stats may be nil,
// in which case it behaves exactly like StablePartition.
func StablePartitionWithStats[T any](s []T, pred func(T) bool, grainSize int, stats *Stats) int {
	r := reduceNondeterministic(s, 0, len(s), grainOrDefault(grainSize), sequentialStablePartition[T], pred, mergeStable[T], stats)
	return r.pivot
}

// StablePartitionDeterministic combines the guarantees of StablePartition
// and PartitionDeterministic: relative order within each side is preserved,
// and - because that arrangement is the unique one satisfying that
// property - both the pivot and the full output slice are a fixed function
// of the input, the predicate and grainSize, independent of GOMAXPROCS.
func StablePartitionDeterministic[T any](s []T, pred func(T) bool, grainSize int) int {
	return StablePartitionDeterministicWithStats(s, pred, grainSize, nil)
}

// StablePartitionDeterministicWithStats is StablePartitionDeterministic,
// except it additionally accounts the leaves and merges it performs into
// stats. stats may be nil, in which case it behaves exactly like
// StablePartitionDeterministic.
func StablePartitionDeterministicWithStats[T any](s []T, pred func(T) bool, grainSize int, stats *Stats) int {
	r := reduceDeterministic(s, 0, len(s), grainOrDefault(grainSize), sequentialStablePartition[T], pred, mergeStable[T], stats)
	return r.pivot
}
