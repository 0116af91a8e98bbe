package rng

import "testing"

func TestResolve(t *testing.T) {
	if got := Resolve(7); got != 7 {
		t.Errorf("Resolve(7) = %d", got)
	}
	if got := Resolve(0); got == 0 {
		t.Error("Resolve(0) kept the zero seed")
	}
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}
