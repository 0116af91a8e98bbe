// Package rngtest provides scripted random sources for tests.
package rngtest

// Sequence replays fixed values, cycling when exhausted.
type Sequence struct {
	Values []float64
	next   int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
