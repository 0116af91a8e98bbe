package rngtest

import "testing"

func TestSequenceCycles(t *testing.T) {
	s := &Sequence{Values: []float64{0.1, 0.2}}
	want := []float64{0.1, 0.2, 0.1, 0.2, 0.1}
	for i, w := range want {
		if got := s.Float64(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
	if got := (&Sequence{}).Float64(); got != 0 {
		t.Errorf("empty sequence = %v, want 0", got)
	}
}
