package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/landing-fx/internal/config"
	"github.com/iburimskiy/landing-fx/internal/fx"
)

var (
	panelColor    = color.NRGBA{R: 12, G: 16, B: 28, A: 220}
	panelBorder   = color.NRGBA{R: 60, G: 90, B: 140, A: 255}
	accentColor   = color.NRGBA{R: 30, G: 144, B: 255, A: 255}
	iconColor     = color.NRGBA{R: 235, G: 240, B: 250, A: 255}
	trackColor    = color.NRGBA{R: 40, G: 48, B: 66, A: 255}
	idleBarHeight = 0.15
)

// whiteSubImage is the texture for filled triangles, created on first use.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// playerWidget is the music player's on-screen view. It implements
// player.View; the game places it whenever the window size changes.
type playerWidget struct {
	bounds fx.Rect

	hasTrack   bool
	playing    bool
	visualizer bool
	dimmed     bool
	progress   float64
	elapsed    string
	total      string
	volume     float64
	levels     []float64

	dragging bool
}

func newPlayerWidget(volume float64) *playerWidget {
	return &playerWidget{
		elapsed: "0:00",
		total:   "0:00",
		volume:  volume,
		levels:  make([]float64, config.VisualizerBars),
	}
}

func (w *playerWidget) SetPlaying(playing bool)           { w.playing = playing }
func (w *playerWidget) SetVisualizerRunning(running bool) { w.visualizer = running }
func (w *playerWidget) SetMuteDimmed(dimmed bool)         { w.dimmed = dimmed }
func (w *playerWidget) SetProgress(percent float64)       { w.progress = clamp01(percent / 100) }
func (w *playerWidget) SetElapsed(label string)           { w.elapsed = label }
func (w *playerWidget) SetTotal(label string)             { w.total = label }

// reset clears what a previous track left behind.
func (w *playerWidget) reset() {
	w.playing, w.visualizer, w.dimmed = false, false, false
	w.progress = 0
	w.elapsed, w.total = "0:00", "0:00"
	clear(w.levels)
}

// setLevels feeds the visualizer; bars hold still while it is not running.
func (w *playerWidget) setLevels(levels []float64) {
	if !w.visualizer {
		return
	}
	copy(w.levels, levels)
}

func (w *playerWidget) place(screenW, screenH int) {
	w.bounds = fx.Rect{
		X: float64(screenW - config.PlayerWidth - config.PlayerMargin),
		Y: float64(screenH - config.PlayerHeight - config.PlayerMargin),
		W: config.PlayerWidth,
		H: config.PlayerHeight,
	}
}

func (w *playerWidget) playButton() fx.Rect {
	return fx.Rect{X: w.bounds.X + 12, Y: w.bounds.Y + 12, W: config.PlayerButton, H: config.PlayerButton}
}

func (w *playerWidget) muteButton() fx.Rect {
	return fx.Rect{X: w.bounds.X + 52, Y: w.bounds.Y + 12, W: config.PlayerButton, H: config.PlayerButton}
}

func (w *playerWidget) slider() fx.Rect {
	return fx.Rect{X: w.bounds.X + 92, Y: w.bounds.Y + 20, W: config.SliderWidth, H: 12}
}

func (w *playerWidget) progressBar() fx.Rect {
	return fx.Rect{X: w.bounds.X + 12, Y: w.bounds.Y + 60, W: w.bounds.W - 24, H: config.ProgressHeight}
}

// sliderValue maps a pointer x onto the 0..100 volume scale.
func (w *playerWidget) sliderValue(x float64) float64 {
	s := w.slider()
	return clamp01((x-s.X)/s.W) * 100
}

func (w *playerWidget) draw(dst *ebiten.Image) {
	b := w.bounds
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), panelColor, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, panelBorder, false)

	if !w.hasTrack {
		ebitenutil.DebugPrintAt(dst, "no track - Ctrl+O or click to choose", int(b.X)+12, int(b.Y)+44)
		return
	}

	w.drawPlayButton(dst)
	w.drawMuteButton(dst)
	w.drawSlider(dst)
	w.drawProgress(dst)
	w.drawVisualizer(dst)
}

// drawPlayButton shows the play icon or the pause icon, never both.
func (w *playerWidget) drawPlayButton(dst *ebiten.Image) {
	r := w.playButton()
	vector.DrawFilledCircle(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(r.W/2), accentColor, true)

	if w.playing {
		bw := float32(r.W) / 7
		x := float32(r.X + r.W/2)
		y := float32(r.Y + r.H/4)
		h := float32(r.H / 2)
		vector.DrawFilledRect(dst, x-2*bw, y, bw, h, iconColor, false)
		vector.DrawFilledRect(dst, x+bw, y, bw, h, iconColor, false)
		return
	}
	fillTriangle(dst,
		r.X+r.W*0.38, r.Y+r.H*0.25,
		r.X+r.W*0.38, r.Y+r.H*0.75,
		r.X+r.W*0.75, r.Y+r.H*0.5,
		iconColor)
}

func (w *playerWidget) drawMuteButton(dst *ebiten.Image) {
	r := w.muteButton()
	alpha := 1.0
	if w.dimmed {
		alpha = 0.5
	}
	c := withAlpha(iconColor, alpha)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, withAlpha(panelBorder, alpha), false)
	vector.DrawFilledRect(dst, float32(r.X+6), float32(r.Y+r.H/2-4), 5, 8, c, false)
	fillTriangle(dst,
		r.X+9, r.Y+r.H/2,
		r.X+18, r.Y+6,
		r.X+18, r.Y+r.H-6,
		c)
	if w.dimmed {
		vector.StrokeLine(dst, float32(r.X+4), float32(r.Y+4), float32(r.X+r.W-4), float32(r.Y+r.H-4), 2, c, true)
	}
}

func (w *playerWidget) drawSlider(dst *ebiten.Image) {
	s := w.slider()
	mid := float32(s.Y + s.H/2)
	vector.StrokeLine(dst, float32(s.X), mid, float32(s.X+s.W), mid, 3, trackColor, false)
	knob := s.X + s.W*clamp01(w.volume)
	vector.StrokeLine(dst, float32(s.X), mid, float32(knob), mid, 3, accentColor, false)
	vector.DrawFilledCircle(dst, float32(knob), mid, 6, iconColor, true)
}

func (w *playerWidget) drawProgress(dst *ebiten.Image) {
	p := w.progressBar()
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), trackColor, false)
	if w.progress > 0 {
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W*w.progress), float32(p.H), accentColor, false)
	}
	ebitenutil.DebugPrintAt(dst, w.elapsed, int(p.X), int(p.Y+p.H)+6)
	ebitenutil.DebugPrintAt(dst, w.total, int(p.X+p.W)-len(w.total)*6, int(p.Y+p.H)+6)
}

func (w *playerWidget) drawVisualizer(dst *ebiten.Image) {
	const maxH = 24.0
	x := w.bounds.X + w.bounds.W - 12 - float64(config.VisualizerBars*(config.VisualizerWidth+3))
	base := w.bounds.Y + 12 + maxH
	for i, lv := range w.levels {
		h := maxH * max(idleBarHeight, lv)
		bx := x + float64(i*(config.VisualizerWidth+3))
		vector.DrawFilledRect(dst, float32(bx), float32(base-h), config.VisualizerWidth, float32(h), accentColor, false)
	}
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, c color.NRGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vs := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x1), DstY: float32(y1), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	// vertex colours are straight alpha by default
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteTexture(), op)
}
