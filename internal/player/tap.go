package player

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// tap passes audio through unchanged and remembers the most recent samples,
// so the frame loop can measure the level of what is actually playing.
type tap struct {
	src    beep.Streamer
	mu     sync.RWMutex
	ring   [][2]float64
	head   int // next write position
	filled int
}

func newTap(src beep.Streamer, ringSize int) *tap {
	return &tap{src: src, ring: make([][2]float64, ringSize)}
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 {
		return n, ok
	}
	in := samples[:n]
	size := len(t.ring)
	if len(in) > size {
		in = in[len(in)-size:]
	}

	t.mu.Lock()
	k := copy(t.ring[t.head:], in)
	copy(t.ring, in[k:])
	t.head = (t.head + len(in)) % size
	t.filled = min(t.filled+len(in), size)
	t.mu.Unlock()
	return n, ok
}

func (t *tap) Err() error { return t.src.Err() }

// snapshot returns up to the last n samples, oldest first.
func (t *tap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	out := make([][2]float64, n)
	from := (t.head - n + len(t.ring)) % len(t.ring)
	k := copy(out, t.ring[from:])
	copy(out[k:], t.ring)
	return out
}

// rms is the compressed loudness of a block of stereo samples in [0,1].
func rms(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sum += mono * mono
	}
	return math.Min(1, math.Pow(math.Sqrt(sum/float64(len(samples))), 0.3))
}
