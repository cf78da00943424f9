package partition

import (
	"math/rand/v2"
	"testing"
)

func TestRotateBasic(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7}
	got := rotate(s, 0, 3, 7)
	want := []int{4, 5, 6, 7, 1, 2, 3}
	if got != 4 {
		t.Errorf("rotate returned %d, want 4", got)
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("rotate(0,3,7) = %v, want %v", s, want)
		}
	}
}

func TestRotateIdentityEdges(t *testing.T) {
	s := []int{1, 2, 3}
	if got := rotate(s, 1, 1, 3); got != 3 {
		t.Errorf("rotate(first,first,last) returned %d, want last=3", got)
	}
	if s[0] != 1 || s[1] != 2 || s[2] != 3 {
		t.Errorf("rotate(first,first,last) mutated slice: %v", s)
	}

	if got := rotate(s, 0, 3, 3); got != 0 {
		t.Errorf("rotate(first,last,last) returned %d, want first=0", got)
	}
}

// TestRotateMatchesReference checks rotate against the textbook definition
// (concatenate [middle:last] and [first:middle]) over randomized ranges and
// split points, covering both the "left is shorter" and "right is shorter"
// branches of the Gries-Mills algorithm.
func TestRotateMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 500; trial++ {
		n := rng.IntN(40)
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		first := rng.IntN(n + 1)
		last := first + rng.IntN(n-first+1)
		middle := first + rng.IntN(last-first+1)

		want := make([]int, 0, last-first)
		want = append(want, s[middle:last]...)
		want = append(want, s[first:middle]...)

		got := rotate(s, first, middle, last)
		if got != first+(last-middle) {
			t.Fatalf("trial %d: rotate returned %d, want %d", trial, got, first+(last-middle))
		}
		for i, v := range want {
			if s[first+i] != v {
				t.Fatalf("trial %d: rotate(%d,%d,%d) = %v, want segment %v", trial, first, middle, last, s[first:last], want)
			}
		}
	}
}
