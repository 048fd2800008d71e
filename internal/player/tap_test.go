package player

import (
	"math"
	"testing"
)

func TestSampleTapRecentOrder(t *testing.T) {
	src := &constStreamer{n: 100}
	tap := newSampleTap(src, 8)

	tap.Stream(make([][2]float64, 5))
	if got := len(tap.recent(10)); got != 5 {
		t.Fatalf("recent before wrap = %d samples, want 5", got)
	}

	// Overwrite the ring directly to check ordering across the wrap.
	tap.mu.Lock()
	for i := range tap.ring {
		tap.ring[i] = [2]float64{float64(i), float64(i)}
	}
	tap.nextIndex = 3
	tap.filled = true
	tap.mu.Unlock()

	got := tap.recent(4)
	want := []float64{7, 0, 1, 2}
	for i, s := range got {
		if s[0] != want[i] {
			t.Errorf("recent[%d] = %v, want %v", i, s[0], want[i])
		}
	}
}

func TestSampleTapPassesThrough(t *testing.T) {
	src := &constStreamer{value: 0.25, n: 3}
	tap := newSampleTap(src, 16)

	buf := make([][2]float64, 8)
	n, ok := tap.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream = (%d, %v), want (3, true)", n, ok)
	}
	if buf[2][1] != 0.25 {
		t.Errorf("sample = %v, want 0.25", buf[2][1])
	}
	if _, ok := tap.Stream(buf); ok {
		t.Error("exhausted source still streaming")
	}
}

func TestBandLevels(t *testing.T) {
	samples := make([][2]float64, 64)
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}

	got := bandLevels(samples, make([]float64, 4), 0)
	for i, v := range got {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("band %d = %f, want 1", i, v)
		}
	}

	decayed := bandLevels(nil, []float64{1, 0.5}, 0.5)
	if decayed[0] != 0.5 || decayed[1] != 0.25 {
		t.Errorf("silent decay = %v, want [0.5 0.25]", decayed)
	}
}
