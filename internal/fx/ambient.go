package fx

import (
	"math/rand"
	"time"
)

const (
	moteMinSize     = 3
	moteSizeRange   = 8
	moteMinDuration = 15 * time.Second
	moteDurRange    = 20 * time.Second
	moteMaxDelay    = 10 * time.Second
	moteFade        = 0.1
	moteOvershoot   = 100
)

// Mote is one background particle rising from the bottom of the window to
// above the top, forever.
type Mote struct {
	X        float64 // fraction of the width
	Size     float64
	Duration time.Duration
	Delay    time.Duration
}

type Ambient struct {
	motes   []Mote
	elapsed time.Duration
}

func NewAmbient(rng *rand.Rand, n int) *Ambient {
	a := &Ambient{motes: make([]Mote, n)}
	for i := range a.motes {
		a.motes[i] = Mote{
			X:        rng.Float64(),
			Size:     moteMinSize + rng.Float64()*moteSizeRange,
			Duration: moteMinDuration + time.Duration(rng.Int63n(int64(moteDurRange))),
			Delay:    time.Duration(rng.Int63n(int64(moteMaxDelay))),
		}
	}
	return a
}

func (a *Ambient) Advance(dt time.Duration) { a.elapsed += dt }

func (a *Ambient) Motes() []Mote { return a.motes }

// Each calls fn for every mote that has started, with its position in a
// width×height window and its opacity.
func (a *Ambient) Each(width, height float64, fn func(x, y, size, alpha float64)) {
	for _, m := range a.motes {
		if a.elapsed < m.Delay {
			continue
		}
		p := float64((a.elapsed-m.Delay)%m.Duration) / float64(m.Duration)
		y := height - p*(height+moteOvershoot)
		fn(m.X*width, y, m.Size, moteAlpha(p))
	}
}

func moteAlpha(p float64) float64 {
	switch {
	case p < moteFade:
		return p / moteFade
	case p > 1-moteFade:
		return (1 - p) / moteFade
	default:
		return 1
	}
}
