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

// sequentialPartition is the leaf-level collaborator the driver folds over:
// a plain, single-threaded Hoare partition of s[begin:end]. It gives no
// guarantee about relative order within either side.
func sequentialPartition[T any](s []T, begin, end int, pred func(T) bool) int {
	i, j := begin, end
	for {
		for i < j && pred(s[i]) {
			i++
		}
		if i >= j {
			return i
		}
		j--
		for i < j && !pred(s[j]) {
			j--
		}
		if i >= j {
			return i
		}
		s[i], s[j] = s[j], s[i]
		i++
	}
}

// sequentialStablePartition partitions s[begin:end] while preserving the
// relative order within each side. Unlike sequentialPartition it may
// allocate O(end-begin) temporary storage - bounded by the caller's grain
// size, not by the size of the whole slice.
func sequentialStablePartition[T any](s []T, begin, end int, pred func(T) bool) int {
	trues := make([]T, 0, end-begin)
	falses := make([]T, 0, end-begin)
	for i := begin; i < end; i++ {
		if pred(s[i]) {
			trues = append(trues, s[i])
		} else {
			falses = append(falses, s[i])
		}
	}
	pivot := begin + len(trues)
	copy(s[begin:pivot], trues)
	copy(s[pivot:end], falses)
	return pivot
}
