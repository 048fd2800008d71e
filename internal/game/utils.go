package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/landing-fx/internal/fx"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return to8(r + m), to8(g + m), to8(b + m)
}

// hslToRgb goes through HSV: v = l + s·min(l, 1-l).
func hslToRgb(h, s, l float64) (uint8, uint8, uint8) {
	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return hsvToRgb(h, sv, v)
}

// hsla builds a non-premultiplied colour, alpha in [0, 1].
func hsla(h, s, l, a float64) color.NRGBA {
	r, g, b := hslToRgb(h, s, l)
	return color.NRGBA{R: r, G: g, B: b, A: to8(a)}
}

func hslColor(c fx.HSL, a float64) color.NRGBA {
	return hsla(c.H, c.S, c.L, a)
}

// withAlpha scales the alpha of c by a.
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp01(a))
	return c
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// tickDuration is the time one Update covers. With ebiten.SyncWithFPS the
// configured TPS is negative, so the measured rate is used, then the default.
func tickDuration(tps int, actual float64) time.Duration {
	switch {
	case tps > 0:
		return time.Second / time.Duration(tps)
	case actual > 0:
		return time.Duration(float64(time.Second) / actual)
	default:
		return time.Second / ebiten.DefaultTPS
	}
}

// orbit returns the point turn·2π around (cx, cy) at radius r.
func orbit(cx, cy, r, turn float64) (float64, float64) {
	a := 2 * math.Pi * turn
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}
