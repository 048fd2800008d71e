package trail

import (
	"math"
	"math/rand"
	"testing"
)

type recordingSurface struct {
	clears int
	dots   []Dot
	w, h   int
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.dots = s.dots[:0]
}

func (s *recordingSurface) FillCircle(d Dot) { s.dots = append(s.dots, d) }

func (s *recordingSurface) SetSize(w, h int) { s.w, s.h = w, h }

func newTestEmitter() (*Emitter, *recordingSurface) {
	s := &recordingSurface{}
	return NewEmitter(s, rand.New(rand.NewSource(1))), s
}

func TestPointerMoveSpawnRanges(t *testing.T) {
	e, _ := newTestEmitter()
	for i := 0; i < 1000; i++ {
		e.OnPointerMove(10, 20)
		p := e.particles[len(e.particles)-1]
		if p.X != 10 || p.Y != 20 {
			t.Fatalf("position = (%f,%f), want (10,20)", p.X, p.Y)
		}
		if p.Size < 1 || p.Size >= 4 {
			t.Fatalf("size = %f, want [1,4)", p.Size)
		}
		if p.VX < -1 || p.VX >= 1 || p.VY < -1 || p.VY >= 1 {
			t.Fatalf("velocity = (%f,%f), want [-1,1)", p.VX, p.VY)
		}
		if p.Life != 1 {
			t.Fatalf("life = %f, want 1", p.Life)
		}
	}
}

func TestCapacityKeepsMostRecent(t *testing.T) {
	e, _ := newTestEmitter()
	for i := 0; i < 180; i++ {
		e.OnPointerMove(float64(i), 0)
		if e.Len() > Capacity {
			t.Fatalf("len = %d after %d moves, exceeds %d", e.Len(), i+1, Capacity)
		}
	}

	ps := e.Particles()
	if len(ps) != Capacity {
		t.Fatalf("len = %d, want %d", len(ps), Capacity)
	}
	for i, p := range ps {
		if want := float64(130 + i); p.X != want {
			t.Errorf("particle %d X = %f, want %f", i, p.X, want)
		}
	}
}

func TestNoEvictionBelowCapacity(t *testing.T) {
	e, _ := newTestEmitter()
	for i := 0; i < Capacity; i++ {
		e.OnPointerMove(float64(i), 0)
	}
	if e.Len() != Capacity {
		t.Fatalf("len = %d, want %d", e.Len(), Capacity)
	}
	if e.particles[0].X != 0 {
		t.Errorf("oldest X = %f, want 0", e.particles[0].X)
	}
}

func TestLifeDecaysUntilRemoval(t *testing.T) {
	e, _ := newTestEmitter()
	e.particles = append(e.particles, Particle{X: 0, Y: 0, VX: 1, VY: -1, Size: 3, Life: 1})

	for n := 1; n < 50; n++ {
		e.OnTick()
		if e.Len() != 1 {
			t.Fatalf("tick %d: particle removed early", n)
		}
		p := e.particles[0]
		want := math.Max(0, 1-LifeDecay*float64(n))
		if math.Abs(p.Life-want) > 1e-9 {
			t.Fatalf("tick %d: life = %f, want %f", n, p.Life, want)
		}
		if p.X != float64(n) || p.Y != float64(-n) {
			t.Fatalf("tick %d: position = (%f,%f)", n, p.X, p.Y)
		}
	}

	e.OnTick()
	if e.Len() != 0 {
		t.Fatalf("tick 50: len = %d, want 0", e.Len())
	}
}

func TestSmallParticleRemovedBySize(t *testing.T) {
	e, _ := newTestEmitter()
	e.particles = append(e.particles, Particle{Size: 1, Life: 1})

	// 0.98^34 is just above 0.5, 0.98^35 is below.
	for n := 1; n <= 34; n++ {
		e.OnTick()
		if e.Len() != 1 {
			t.Fatalf("tick %d: removed early, size would be %f", n, math.Pow(SizeDecay, float64(n)))
		}
	}
	e.OnTick()
	if e.Len() != 0 {
		t.Fatalf("tick 35: len = %d, want 0", e.Len())
	}
}

func TestHueAdvancesAndWraps(t *testing.T) {
	e, _ := newTestEmitter()
	start := e.Hue()

	e.OnTick()
	if got := e.Hue(); got != start+HueStep {
		t.Fatalf("hue = %f, want %f", got, start+HueStep)
	}

	for i := 1; i < 720; i++ {
		e.OnTick()
		if h := e.Hue(); h < 0 || h >= 360 {
			t.Fatalf("hue %f out of [0,360)", h)
		}
	}
	if got := e.Hue(); got != start {
		t.Errorf("hue after 720 ticks = %f, want %f", got, start)
	}
}

func TestTickDrawsSurvivors(t *testing.T) {
	e, s := newTestEmitter()
	e.particles = append(e.particles,
		Particle{X: 5, Y: 5, Size: 2, Life: 1},
		Particle{X: 9, Y: 9, Size: 0.4, Life: 1},
	)

	e.OnTick()

	if s.clears != 1 {
		t.Errorf("clears = %d, want 1", s.clears)
	}
	if len(s.dots) != 1 {
		t.Fatalf("dots = %d, want 1", len(s.dots))
	}
	d := s.dots[0]
	if math.Abs(d.Radius-2*SizeDecay) > 1e-12 {
		t.Errorf("radius = %f, want %f", d.Radius, 2*SizeDecay)
	}
	if math.Abs(d.Alpha-(1-LifeDecay)*AlphaFactor) > 1e-12 {
		t.Errorf("alpha = %f, want %f", d.Alpha, (1-LifeDecay)*AlphaFactor)
	}
	if d.Hue != e.Hue() {
		t.Errorf("dot hue = %f, want %f", d.Hue, e.Hue())
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	e, s := newTestEmitter()
	e.OnPointerMove(900, 700)
	e.OnResize(320, 240)

	if s.w != 320 || s.h != 240 {
		t.Errorf("surface size = %dx%d, want 320x240", s.w, s.h)
	}
	if p := e.particles[0]; p.X != 900 || p.Y != 700 {
		t.Errorf("particle moved to (%f,%f)", p.X, p.Y)
	}
}
