package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/landing-fx/internal/trail"
)

const (
	trailSaturation = 1.0
	trailLightness  = 0.6
)

// trailSurface is the trail's canvas, an offscreen image the size of the
// window that is composited over the page every frame.
type trailSurface struct {
	img *ebiten.Image
}

func newTrailSurface(width, height int) *trailSurface {
	s := &trailSurface{}
	s.SetSize(width, height)
	return s
}

func (s *trailSurface) Clear() { s.img.Clear() }

func (s *trailSurface) FillCircle(d trail.Dot) {
	c := hsla(d.Hue, trailSaturation, trailLightness, d.Alpha)
	vector.DrawFilledCircle(s.img, float32(d.X), float32(d.Y), float32(d.Radius), c, true)
}

func (s *trailSurface) SetSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
}

func (s *trailSurface) Image() *ebiten.Image { return s.img }
