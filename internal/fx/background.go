package fx

import (
	"math"
	"time"
)

const (
	ShiftInterval = 100 * time.Millisecond
	ShiftStep     = 0.5
	ShiftStartHue = 200
)

// HSL is a colour with hue in degrees and saturation and lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

// BackgroundShift slowly walks the hue of the page gradient.
type BackgroundShift struct {
	hue     float64
	pending time.Duration
}

func NewBackgroundShift() *BackgroundShift {
	return &BackgroundShift{hue: ShiftStartHue}
}

func (b *BackgroundShift) Advance(dt time.Duration) {
	b.pending += dt
	for b.pending >= ShiftInterval {
		b.pending -= ShiftInterval
		b.hue = math.Mod(b.hue+ShiftStep, 360)
	}
}

func (b *BackgroundShift) Hue() float64 { return b.hue }

// Stops returns the gradient colours at 0%, 50% and 100%.
func (b *BackgroundShift) Stops() [3]HSL {
	return [3]HSL{
		{H: b.hue, S: 0.40, L: 0.10},
		{H: math.Mod(b.hue+30, 360), S: 0.35, L: 0.15},
		{H: math.Mod(b.hue+60, 360), S: 0.30, L: 0.12},
	}
}
