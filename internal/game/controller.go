package game

import (
	"log"
	"time"

	"github.com/iburimskiy/landing-fx/internal/fx"
)

// controller owns the page-session effects that do not belong to any one
// widget: the easter egg and the background hue.
type controller struct {
	logger *log.Logger

	konami  fx.Konami
	rainbow fx.Rainbow
	bg      *fx.BackgroundShift
	shift   bool
}

func newController(logger *log.Logger, shift bool) *controller {
	return &controller{
		logger: logger,
		bg:     fx.NewBackgroundShift(),
		shift:  shift,
	}
}

func (c *controller) keyPressed(name string) {
	if c.konami.Press(name) {
		c.logger.Printf("konami code entered")
		c.rainbow.Trigger()
	}
}

func (c *controller) setShift(enabled bool) { c.shift = enabled }

func (c *controller) advance(dt time.Duration) {
	c.rainbow.Advance(dt)
	if c.shift {
		c.bg.Advance(dt)
	}
}

func (c *controller) background() [3]fx.HSL { return c.bg.Stops() }

func (c *controller) rainbowAngle() (float64, bool) {
	return c.rainbow.Angle(), c.rainbow.Active()
}

// teardown ends the session; the controller is not used afterwards.
func (c *controller) teardown() {
	c.konami.Reset()
	c.rainbow = fx.Rainbow{}
	c.shift = false
}
