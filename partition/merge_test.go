package partition

import "testing"

func TestMergeUnstableLeftAllTrue(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	l := partitionRange{0, 3, 3} // [1,2,3] all true, no falses
	r := partitionRange{3, 5, 6} // [4,5] true, [6] false
	want := append([]int(nil), s...)
	got := mergeUnstable(s, 1000, l, r)
	if got.begin != 0 || got.pivot != 5 || got.end != 6 {
		t.Fatalf("got %+v, want {0 5 6}", got)
	}
	if !equalInts(s, want) {
		t.Fatalf("mergeUnstable mutated slice when l had no falses: %v", s)
	}
}

func TestMergeUnstableSwapsShorterSide(t *testing.T) {
	// l = [T T F F F], r = [T T T F]. Combined middle reads F F F T T T.
	s := []int{10, 20, 91, 92, 93, 30, 40, 50, 94}
	l := partitionRange{0, 2, 5}
	r := partitionRange{5, 8, 9}
	got := mergeUnstable(s, 1000, l, r)
	if got.begin != 0 || got.end != 9 {
		t.Fatalf("got %+v, want begin=0 end=9", got)
	}
	if got.pivot != 5 {
		t.Fatalf("pivot=%d, want 5 (2 trues from l + 3 trues from r)", got.pivot)
	}
	trueSet := map[int]bool{10: true, 20: true, 30: true, 40: true, 50: true}
	for i := 0; i < got.pivot; i++ {
		if !trueSet[s[i]] {
			t.Fatalf("s[%d]=%d should be in the true set, full=%v", i, s[i], s)
		}
	}
	for i := got.pivot; i < got.end; i++ {
		if trueSet[s[i]] {
			t.Fatalf("s[%d]=%d should be in the false set, full=%v", i, s[i], s)
		}
	}
}

func TestMergeUnstablePanicsOnNonAdjacent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-adjacent ranges")
		}
	}()
	s := []int{1, 2, 3, 4}
	mergeUnstable(s, 1000, partitionRange{0, 1, 1}, partitionRange{2, 2, 4})
}

func TestMergeStablePreservesOrder(t *testing.T) {
	// l over [10,60,20] -> stable local partition would be [10,20,60], pivot 2
	// r over [70,30] -> stable local partition would be [30,70], pivot... wait
	// r's own predicate-true elements must come first: [30] then [70] -> pivot 1
	s := []int{10, 20, 60, 30, 70}
	l := partitionRange{0, 2, 3} // [10,20 | 60]
	r := partitionRange{3, 4, 5} // [30 | 70]
	got := mergeStable(s, l, r)
	want := []int{10, 20, 30, 60, 70}
	if got.begin != 0 || got.pivot != 3 || got.end != 5 {
		t.Fatalf("got %+v, want {0 3 5}", got)
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("mergeStable result = %v, want %v", s, want)
		}
	}
}

func TestMergeStableNoFalsesInLeft(t *testing.T) {
	s := []int{1, 2, 3, 4}
	l := partitionRange{0, 2, 2}
	r := partitionRange{2, 3, 4}
	got := mergeStable(s, l, r)
	if got != (partitionRange{0, 3, 4}) {
		t.Fatalf("got %+v, want {0 3 4}", got)
	}
	if s[0] != 1 || s[1] != 2 || s[2] != 3 || s[3] != 4 {
		t.Fatalf("mergeStable mutated slice when l had no falses: %v", s)
	}
}
