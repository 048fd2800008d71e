package player

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// sampleTap passes audio through unchanged and keeps the most recent samples
// in a ring so the visualizer bars can follow what is actually playing.
type sampleTap struct {
	Source beep.Streamer

	mu        sync.RWMutex
	ring      [][2]float64
	nextIndex int
	filled    bool
}

func newSampleTap(src beep.Streamer, ringSize int) *sampleTap {
	return &sampleTap{
		Source: src,
		ring:   make([][2]float64, ringSize),
	}
}

func (t *sampleTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.ring[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex == len(t.ring) {
				t.nextIndex = 0
				t.filled = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *sampleTap) Err() error { return t.Source.Err() }

// recent returns up to n of the latest samples, oldest first.
func (t *sampleTap) recent(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	avail := t.nextIndex
	if t.filled {
		avail = len(t.ring)
	}
	if n > avail {
		n = avail
	}

	out := make([][2]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.ring)
	}
	for i := range out {
		out[i] = t.ring[(start+i)%len(t.ring)]
	}
	return out
}

// bandLevels splits samples into n equal windows and returns a compressed RMS
// level in [0, 1] for each, blended with prev by smoothing.
func bandLevels(samples [][2]float64, prev []float64, smoothing float64) []float64 {
	n := len(prev)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if len(samples) == 0 {
		for i := range out {
			out[i] = smoothing * prev[i]
		}
		return out
	}

	size := len(samples) / n
	if size < 1 {
		size = 1
	}
	for i := 0; i < n; i++ {
		start := i * size
		if start >= len(samples) {
			out[i] = smoothing * prev[i]
			continue
		}
		end := start + size
		if end > len(samples) {
			end = len(samples)
		}

		var sumSquares float64
		for _, s := range samples[start:end] {
			mono := (s[0] + s[1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(end-start))
		mag := math.Min(1, math.Pow(rms, 0.3))

		out[i] = smoothing*prev[i] + (1-smoothing)*mag
	}
	return out
}
