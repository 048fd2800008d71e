package fx

import "time"

const glowFade = 300 * time.Millisecond

// Glow follows the pointer inside a card and fades in while it hovers.
type Glow struct {
	X, Y    float64 // relative to the card
	hovered bool
	alpha   float64
}

// Track updates the glow from the pointer position and the card bounds.
func (g *Glow) Track(px, py float64, card Rect) {
	g.hovered = card.Contains(px, py)
	if g.hovered {
		g.X = px - card.X
		g.Y = py - card.Y
	}
}

func (g *Glow) Advance(dt time.Duration) {
	step := float64(dt) / float64(glowFade)
	if g.hovered {
		g.alpha = min(1, g.alpha+step)
	} else {
		g.alpha = max(0, g.alpha-step)
	}
}

func (g *Glow) Hovered() bool { return g.hovered }

func (g *Glow) Alpha() float64 { return g.alpha }
