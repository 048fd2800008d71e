package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/landing-fx/internal/config"
)

// RevealSlide is how far below its place a hidden section sits.
const RevealSlide = 30

// Reveal fades a section in the first time enough of it is on screen.
type Reveal struct {
	revealed bool
	fade     *gween.Tween
	opacity  float64
}

// Observe checks the section span [top, bottom) against the viewport span and
// reports true on the call that reveals it.
func (r *Reveal) Observe(top, bottom, viewTop, viewBottom float64) bool {
	if r.revealed || bottom <= top {
		return false
	}
	overlap := min(bottom, viewBottom) - max(top, viewTop)
	if overlap/(bottom-top) < config.RevealThreshold {
		return false
	}
	r.revealed = true
	r.fade = gween.New(0, 1, float32(config.RevealDuration.Seconds()), ease.OutQuad)
	return true
}

func (r *Reveal) Advance(dt time.Duration) {
	if r.fade == nil {
		return
	}
	v, finished := r.fade.Update(float32(dt.Seconds()))
	r.opacity = float64(v)
	if finished {
		r.opacity = 1
		r.fade = nil
	}
}

func (r *Reveal) Revealed() bool { return r.revealed }

func (r *Reveal) Opacity() float64 { return r.opacity }

// Slide is the current downward offset of the section.
func (r *Reveal) Slide() float64 { return RevealSlide * (1 - r.opacity) }
