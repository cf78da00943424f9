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
	"fmt"
	"runtime/debug"
	"sync"
)

// PredicateError wraps a panic recovered from the predicate (or from the
// sequential leaf partition built on top of it), together with the stack at
// the point of the panic. It is re-panicked from the caller's goroutine once
// every in-flight leaf has finished, the same "cascade the panic" discipline
// storage/scan.go uses for its own scanError.
type PredicateError struct {
	Value any
	Stack string
}

func (e *PredicateError) Error() string {
	return fmt.Sprint(e.Value) + "\n" + e.Stack
}

// panicGuard collects the first panic recovered from any leaf goroutine.
// Only the first is kept; later ones are assumed to be fallout from the
// slice already being left in an inconsistent state.
type panicGuard struct {
	once sync.Once
	err  *PredicateError
}

func (g *panicGuard) set(r any) {
	g.once.Do(func() {
		g.err = &PredicateError{Value: r, Stack: string(debug.Stack())}
	})
}

// check panics with the recorded error, if any. Call after every leaf
// goroutine has been joined.
func (g *panicGuard) check() {
	if g.err != nil {
		panic(g.err)
	}
}
