package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/landing-fx/internal/config"
)

// Scroller holds the page's vertical scroll offset.
type Scroller struct {
	offset float64
	max    float64
	tween  *gween.Tween
}

// SetBounds updates the scrollable range for the given content and viewport
// heights.
func (s *Scroller) SetBounds(content, viewport float64) {
	s.max = max(0, content-viewport)
	s.offset = s.clamp(s.offset)
}

// Wheel scrolls by wheel notches; positive dy scrolls up. It cancels a smooth
// scroll in progress.
func (s *Scroller) Wheel(dy float64) {
	s.tween = nil
	s.offset = s.clamp(s.offset - dy*config.ScrollStep)
}

// ScrollTo eases the offset to y.
func (s *Scroller) ScrollTo(y float64) {
	s.tween = gween.New(float32(s.offset), float32(s.clamp(y)), float32(config.ScrollDuration.Seconds()), ease.OutCubic)
}

func (s *Scroller) Advance(dt time.Duration) {
	if s.tween == nil {
		return
	}
	v, finished := s.tween.Update(float32(dt.Seconds()))
	s.offset = s.clamp(float64(v))
	if finished {
		s.tween = nil
	}
}

func (s *Scroller) Offset() float64 { return s.offset }

func (s *Scroller) Scrolling() bool { return s.tween != nil }

func (s *Scroller) clamp(y float64) float64 {
	return min(max(y, 0), s.max)
}
