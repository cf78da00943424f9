package pool

import (
	"sync/atomic"
	"testing"
)

func TestForCoversEveryElement(t *testing.T) {
	const n = 10007
	var seen [n]int32
	err := For(0, n, 37, func(i, j int) {
		for k := i; k < j; k++ {
			atomic.AddInt32(&seen[k], 1)
		}
	})
	if err != nil {
		t.Fatalf("For returned error: %v", err)
	}
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestSlotsTryAcquireRelease(t *testing.T) {
	s := NewSlots(2)
	if !s.TryAcquire() {
		t.Fatal("expected first acquire to succeed")
	}
	if !s.TryAcquire() {
		t.Fatal("expected second acquire to succeed")
	}
	if s.TryAcquire() {
		t.Fatal("expected third acquire to fail, pool has only 2 slots")
	}
	s.Release()
	if !s.TryAcquire() {
		t.Fatal("expected acquire to succeed after release")
	}
}

func TestWorkersAtLeastOne(t *testing.T) {
	if Workers() < 1 {
		t.Fatalf("Workers() = %d, want >= 1", Workers())
	}
}
