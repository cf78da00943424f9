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

// rotate rearranges s[first:last] so that the element originally at middle
// ends up at first, preserving the relative order within [first,middle) and
// within [middle,last). It returns first + (last - middle), the new index of
// the element that used to be at first.
//
// This is the iterative Gries-Mills rotation: repeatedly swap the shorter
// side against an equal-length block of the longer side, then recurse on
// what's left of the longer side. No auxiliary storage, O(last-first) swaps.
func rotate[T any](s []T, first, middle, last int) int {
	ret := first + (last - middle)
	if first == middle || middle == last {
		return ret
	}

	n := last - first
	m := middle - first
	isLeft := m <= n/2
	if !isLeft {
		m = n - m
	}

	for n > 1 && m > 0 {
		m2 := m * 2
		if isLeft {
			for last-first >= m2 {
				swapBlocks(s, first, m, first+m)
				first += m
			}
		} else {
			for last-first >= m2 {
				swapBlocks(s, last-m2, m, last-m)
				last -= m
			}
		}
		isLeft = !isLeft
		m = n % m
		n = last - first
	}

	return ret
}
