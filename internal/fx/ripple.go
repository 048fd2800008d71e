package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	RippleDuration   = 600 * time.Millisecond
	RippleStartAlpha = 0.6
	RippleEndScale   = 2
)

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Ripple is a circle that grows out of a click and fades away, clipped to
// the button it started on.
type Ripple struct {
	CX, CY float64
	Size   float64
	Clip   Rect
	Scale  float64
	Alpha  float64

	scale   *gween.Tween
	alpha   *gween.Tween
	elapsed time.Duration
}

// Radius is the current radius of the circle.
func (r *Ripple) Radius() float64 { return r.Size / 2 * r.Scale }

type Ripples struct {
	items []*Ripple
}

// Spawn starts a ripple for a click at (px, py) on button.
func (rs *Ripples) Spawn(button Rect, px, py float64) *Ripple {
	r := &Ripple{
		CX:    px,
		CY:    py,
		Size:  max(button.W, button.H),
		Clip:  button,
		Alpha: RippleStartAlpha,
		scale: gween.New(0, RippleEndScale, float32(RippleDuration.Seconds()), ease.OutQuad),
		alpha: gween.New(RippleStartAlpha, 0, float32(RippleDuration.Seconds()), ease.OutQuad),
	}
	rs.items = append(rs.items, r)
	return r
}

// Advance grows every ripple and drops those older than RippleDuration.
func (rs *Ripples) Advance(dt time.Duration) {
	live := rs.items[:0]
	for _, r := range rs.items {
		r.elapsed += dt
		s, _ := r.scale.Update(float32(dt.Seconds()))
		a, _ := r.alpha.Update(float32(dt.Seconds()))
		r.Scale, r.Alpha = float64(s), float64(a)
		if r.elapsed >= RippleDuration {
			continue
		}
		live = append(live, r)
	}
	clear(rs.items[len(live):])
	rs.items = live
}

func (rs *Ripples) Items() []*Ripple { return rs.items }

func (rs *Ripples) Len() int { return len(rs.items) }
