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

// swapBlocks swaps s[a+i] with s[b+i] for i in [0,n) and returns b+n.
// The two blocks [a,a+n) and [b,b+n) must be disjoint. The loop body has no
// branches and no cross-iteration dependency, so the compiler is free to
// vectorize it.
func swapBlocks[T any](s []T, a, n, b int) int {
	for i := 0; i < n; i++ {
		s[a+i], s[b+i] = s[b+i], s[a+i]
	}
	return b + n
}
