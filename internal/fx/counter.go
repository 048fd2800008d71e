package fx

import (
	"math"
	"strconv"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	CounterDuration = 2000 * time.Millisecond
	CounterTick     = 16 * time.Millisecond
)

// Counter counts from 0 up to Target in fixed 16ms steps over two seconds.
// It runs at most once.
type Counter struct {
	Target int

	tween   *gween.Tween
	value   int
	started bool
	done    bool
	pending time.Duration
}

func NewCounter(target int) *Counter {
	return &Counter{Target: target}
}

// Start begins the animation. It reports false if the counter already ran.
func (c *Counter) Start() bool {
	if c.started {
		return false
	}
	c.started = true
	c.tween = gween.New(0, float32(c.Target), float32(CounterDuration.Seconds()), ease.Linear)
	return true
}

// Advance runs as many whole ticks as fit in the elapsed time.
func (c *Counter) Advance(dt time.Duration) {
	if !c.started || c.done {
		return
	}
	c.pending += dt
	for c.pending >= CounterTick && !c.done {
		c.pending -= CounterTick
		c.Step()
	}
}

// Step performs one tick.
func (c *Counter) Step() {
	if !c.started || c.done {
		return
	}
	v, finished := c.tween.Update(float32(CounterTick.Seconds()))
	if finished {
		c.value = c.Target
		c.done = true
		return
	}
	c.value = min(int(math.Floor(float64(v))), c.Target)
}

func (c *Counter) Value() int { return c.value }

func (c *Counter) Started() bool { return c.started }

func (c *Counter) Done() bool { return c.done }

func (c *Counter) Text() string { return strconv.Itoa(c.value) }
