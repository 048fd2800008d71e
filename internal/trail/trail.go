// Package trail draws a fading, colour-cycling trail of dots that follows the
// pointer. The emitter owns its particles and hue; drawing goes through a
// Surface supplied by the host.
package trail

import (
	"math"
	"math/rand"
)

const (
	Capacity = 50

	LifeDecay   = 0.02
	SizeDecay   = 0.98
	MinSize     = 0.5
	HueStep     = 0.5
	AlphaFactor = 0.5

	minSpawnSize = 1.0
	maxSpawnSize = 4.0
)

// Dot is one draw instruction: a filled circle in HSL(Hue, 100%, 60%) with
// the given alpha.
type Dot struct {
	X, Y   float64
	Radius float64
	Hue    float64
	Alpha  float64
}

// Surface is the drawing target of the trail.
type Surface interface {
	Clear()
	FillCircle(d Dot)
	SetSize(width, height int)
}

// Particle is a single trail point. Velocity is fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64

	age int
}

// Emitter keeps at most Capacity particles, oldest first.
type Emitter struct {
	surface   Surface
	rng       *rand.Rand
	particles []Particle
	hue       float64
}

func NewEmitter(surface Surface, rng *rand.Rand) *Emitter {
	return &Emitter{
		surface:   surface,
		rng:       rng,
		particles: make([]Particle, 0, Capacity+1),
	}
}

// OnPointerMove spawns one particle at (x, y). When the set grows past
// Capacity the oldest particle is dropped.
func (e *Emitter) OnPointerMove(x, y float64) {
	e.particles = append(e.particles, Particle{
		X:    x,
		Y:    y,
		VX:   e.rng.Float64()*2 - 1,
		VY:   e.rng.Float64()*2 - 1,
		Size: minSpawnSize + e.rng.Float64()*(maxSpawnSize-minSpawnSize),
		Life: 1,
	})

	if len(e.particles) > Capacity {
		n := copy(e.particles, e.particles[1:])
		e.particles = e.particles[:n]
	}
}

// OnTick advances every particle by one frame, drops the dead ones, moves the
// hue forward and redraws the survivors.
func (e *Emitter) OnTick() {
	e.surface.Clear()

	for i := range e.particles {
		e.particles[i] = e.particles[i].next()
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		if p.dead() {
			continue
		}
		alive = append(alive, p)
	}
	e.particles = alive

	e.hue = math.Mod(e.hue+HueStep, 360)

	for _, p := range e.particles {
		e.surface.FillCircle(Dot{
			X:      p.X,
			Y:      p.Y,
			Radius: p.Size,
			Hue:    e.hue,
			Alpha:  p.Life * AlphaFactor,
		})
	}
}

// OnResize matches the surface to the viewport. Existing particles keep their
// positions even if they end up outside it.
func (e *Emitter) OnResize(width, height int) {
	e.surface.SetSize(width, height)
}

func (e *Emitter) Hue() float64 { return e.hue }

func (e *Emitter) Len() int { return len(e.particles) }

// Particles returns a copy of the active set, oldest first.
func (e *Emitter) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

func (p Particle) next() Particle {
	p.age++
	p.X += p.VX
	p.Y += p.VY
	// derived from age so that tick 50 lands on exactly zero
	p.Life = 1 - LifeDecay*float64(p.age)
	p.Size *= SizeDecay
	return p
}

func (p Particle) dead() bool {
	return p.Life <= 0 || p.Size < MinSize
}
