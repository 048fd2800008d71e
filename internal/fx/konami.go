package fx

import (
	"math"
	"time"
)

// KonamiSequence uses ebiten key names.
var KonamiSequence = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"B", "A",
}

// Konami remembers the last len(KonamiSequence) keys.
type Konami struct {
	keys []string
}

// Press records a key and reports whether the last keys spell the sequence.
func (k *Konami) Press(key string) bool {
	k.keys = append(k.keys, key)
	if over := len(k.keys) - len(KonamiSequence); over > 0 {
		n := copy(k.keys, k.keys[over:])
		k.keys = k.keys[:n]
	}
	if len(k.keys) != len(KonamiSequence) {
		return false
	}
	for i, key := range k.keys {
		if key != KonamiSequence[i] {
			return false
		}
	}
	return true
}

func (k *Konami) Reset() { k.keys = k.keys[:0] }

const (
	RainbowDuration = 5 * time.Second
	RainbowPeriod   = 2 * time.Second
)

// Rainbow rotates the hue of the whole frame for RainbowDuration.
type Rainbow struct {
	elapsed time.Duration
	active  bool
}

// Trigger (re)starts the effect.
func (r *Rainbow) Trigger() {
	r.active = true
	r.elapsed = 0
}

func (r *Rainbow) Advance(dt time.Duration) {
	if !r.active {
		return
	}
	r.elapsed += dt
	if r.elapsed >= RainbowDuration {
		r.active = false
		r.elapsed = 0
	}
}

func (r *Rainbow) Active() bool { return r.active }

// Angle is the current hue rotation in radians.
func (r *Rainbow) Angle() float64 {
	if !r.active {
		return 0
	}
	turn := float64(r.elapsed%RainbowPeriod) / float64(RainbowPeriod)
	return 2 * math.Pi * turn
}
