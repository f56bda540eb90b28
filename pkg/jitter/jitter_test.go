package jitter

import (
	"math/rand"
	"testing"
	"time"
)

func TestDurationBounds(t *testing.T) {
	base := time.Second
	for i := 0; i < 100; i++ {
		got := Duration(base, DefaultJitter)
		if got < base || got > base+base/2 {
			t.Fatalf("Duration(1s, 0.5) = %v, want within [1s, 1.5s]", got)
		}
	}
}

func TestDurationWithSeedDeterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(1)))
	b := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(1)))
	if a != b {
		t.Fatalf("DurationWithSeed(seed=1) = %v and %v, want equal", a, b)
	}
}

func TestExponentialBackoffCapped(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	// Без джиттера границы точные
	if got := ExponentialBackoff(base, max, 0, 0); got != base {
		t.Fatalf("ExponentialBackoff(attempt=0) = %v, want %v", got, base)
	}
	if got := ExponentialBackoff(base, max, 2, 0); got != 4*time.Second {
		t.Fatalf("ExponentialBackoff(attempt=2) = %v, want 4s", got)
	}
	if got := ExponentialBackoff(base, max, 10, 0); got != max {
		t.Fatalf("ExponentialBackoff(attempt=10) = %v, want cap %v", got, max)
	}
}
