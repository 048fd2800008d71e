package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/landing-fx/internal/config"
)

type GateState int

const (
	GateLoading GateState = iota
	GateWaiting
	GateEntered
)

func (s GateState) String() string {
	switch s {
	case GateLoading:
		return "loading"
	case GateWaiting:
		return "waiting"
	case GateEntered:
		return "entered"
	default:
		return "unknown"
	}
}

// Gate is the loading screen. Audio may only start after a user gesture, so
// the page waits for one click before calling onEnter, exactly once.
type Gate struct {
	state   GateState
	elapsed time.Duration
	onEnter func()

	fade   *gween.Tween
	alpha  float64
	hidden bool
}

func NewGate(onEnter func()) *Gate {
	return &Gate{onEnter: onEnter, alpha: 1}
}

func (g *Gate) Advance(dt time.Duration) {
	switch g.state {
	case GateLoading:
		g.elapsed += dt
		if g.elapsed >= config.GateDelay {
			g.state = GateWaiting
		}
	case GateEntered:
		if g.hidden {
			return
		}
		v, finished := g.fade.Update(float32(dt.Seconds()))
		g.alpha = float64(v)
		if finished {
			g.alpha = 0
			g.hidden = true
		}
	}
}

// Click consumes the entry click. It reports false for every click that is
// not the one that opens the page.
func (g *Gate) Click() bool {
	if g.state != GateWaiting {
		return false
	}
	g.state = GateEntered
	g.fade = gween.New(1, 0, float32(config.GateFadeOut.Seconds()), ease.Linear)
	if g.onEnter != nil {
		g.onEnter()
	}
	return true
}

func (g *Gate) State() GateState { return g.state }

// Blocking reports whether page input is still held back.
func (g *Gate) Blocking() bool { return g.state != GateEntered }

func (g *Gate) Visible() bool { return !g.hidden }

func (g *Gate) Alpha() float64 { return g.alpha }
