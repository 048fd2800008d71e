package fx

import (
	"math"
	"testing"
	"time"
)

func feed(k *Konami, keys []string) int {
	hits := 0
	for _, key := range keys {
		if k.Press(key) {
			hits++
		}
	}
	return hits
}

func TestKonamiExactSequence(t *testing.T) {
	var k Konami
	if hits := feed(&k, KonamiSequence); hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}

func TestKonamiOneKeyOff(t *testing.T) {
	for i := range KonamiSequence {
		keys := append([]string(nil), KonamiSequence...)
		keys[i] = "X"
		var k Konami
		if hits := feed(&k, keys); hits != 0 {
			t.Errorf("position %d changed: hits = %d, want 0", i, hits)
		}
	}
}

func TestKonamiRollingWindow(t *testing.T) {
	var k Konami
	keys := append([]string{"Enter"}, KonamiSequence...)
	if hits := feed(&k, keys); hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if k.Press("A") {
		t.Error("extra key after the sequence matched again")
	}
}

func TestRainbowLifetime(t *testing.T) {
	var r Rainbow
	if r.Active() || r.Angle() != 0 {
		t.Fatal("rainbow active before trigger")
	}

	r.Trigger()
	r.Advance(RainbowPeriod / 4)
	if got := r.Angle(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("angle = %f, want pi/2", got)
	}

	r.Advance(RainbowDuration - RainbowPeriod/4 - time.Millisecond)
	if !r.Active() {
		t.Fatal("rainbow ended early")
	}
	r.Advance(time.Millisecond)
	if r.Active() {
		t.Error("rainbow still active after 5s")
	}
}
