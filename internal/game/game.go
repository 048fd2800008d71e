// Package game is the ebiten host for the landing page. It turns window input
// into calls on the trail, the player and the page effects, and draws them.
package game

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/landing-fx/internal/config"
	"github.com/iburimskiy/landing-fx/internal/fx"
	"github.com/iburimskiy/landing-fx/internal/player"
	"github.com/iburimskiy/landing-fx/internal/trail"
)

type Options struct {
	Settings  config.Settings
	TrackPath string
	Watcher   *config.Watcher
	Logger    *log.Logger
	Debug     bool
}

type Game struct {
	logger   *log.Logger
	settings config.Settings
	watcher  *config.Watcher
	debug    bool

	width, height int

	// cursor trail
	trail        *trail.Emitter
	trailSurface *trailSurface
	lastCursor   image.Point
	cursorSeen   bool

	// music
	track  *player.Track
	player *player.Player
	widget *playerWidget

	// page
	gate    *fx.Gate
	page    *page
	scroll  fx.Scroller
	ripples fx.Ripples
	ambient *fx.Ambient
	ctrl    *controller

	frame   *ebiten.Image
	keys    []ebiten.Key
	lastErr error
}

func NewGame(opts Options) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g := &Game{
		logger:   opts.Logger,
		settings: opts.Settings,
		watcher:  opts.Watcher,
		debug:    opts.Debug,
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		widget:   newPlayerWidget(opts.Settings.Volume / 100),
		page:     newPage(opts.Settings),
		ambient:  fx.NewAmbient(rng, config.AmbientParticleCount),
		ctrl:     newController(opts.Logger, opts.Settings.BackgroundShift),
	}
	g.trailSurface = newTrailSurface(g.width, g.height)
	g.trail = trail.NewEmitter(g.trailSurface, rng)
	g.gate = fx.NewGate(g.enter)
	g.page.layout(float64(g.width))
	g.widget.place(g.width, g.height)

	if opts.TrackPath != "" {
		if err := g.loadTrack(opts.TrackPath); err != nil {
			g.fail(err)
		}
	}
	return g
}

// enter runs once, on the click that dismisses the loading screen.
func (g *Game) enter() {
	if g.player != nil {
		g.player.Start()
	}
}

func (g *Game) loadTrack(path string) error {
	t, err := player.OpenTrack(path)
	if err != nil {
		return err
	}
	if g.track != nil {
		if err := g.track.Close(); err != nil {
			g.logger.Printf("%v", err)
		}
	}

	g.track = t
	g.widget.reset()
	g.widget.hasTrack = true
	g.player = player.New(t, g.widget, g.logger, g.widget.volume)
	g.logger.Printf("loaded track %s", path)
	return nil
}

func (g *Game) chooseTrack() {
	path, err := player.ChooseTrack()
	if err != nil {
		g.fail(err)
		return
	}
	if path == "" {
		return
	}
	if err := g.loadTrack(path); err != nil {
		g.fail(err)
		return
	}
	if !g.gate.Blocking() {
		g.player.Start()
	}
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.logger.Printf("%v", err)
}

func (g *Game) Update() error {
	dt := tickDuration(ebiten.TPS(), ebiten.ActualTPS())

	g.pollSettings()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.ctrl.keyPressed(k.String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.chooseTrack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.gate.Blocking() && g.player != nil {
		g.player.TogglePlay()
	}

	g.handlePointer()

	g.gate.Advance(dt)
	g.scroll.SetBounds(g.page.height, float64(g.height))
	g.scroll.Advance(dt)
	g.ripples.Advance(dt)
	g.ambient.Advance(dt)
	g.ctrl.advance(dt)

	// the page stays frozen behind the loading screen
	if !g.gate.Blocking() {
		mx, my := ebiten.CursorPosition()
		g.page.advance(dt, g.scroll.Offset(), float64(g.height), float64(mx), float64(my)+g.scroll.Offset())
	}

	if g.track != nil {
		g.track.Poll(g.player)
		g.widget.setLevels(g.track.Levels())
	}
	return nil
}

func (g *Game) pollSettings() {
	if g.watcher == nil {
		return
	}
	select {
	case s, ok := <-g.watcher.Settings:
		if ok {
			g.applySettings(s)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Printf("settings reload: %v", err)
		}
	default:
	}
}

func (g *Game) applySettings(s config.Settings) {
	old := g.page
	if s.Volume != g.settings.Volume {
		g.widget.volume = s.Volume / 100
		if g.player != nil {
			g.setVolume(s.Volume)
		}
	}
	g.settings = s
	g.page = newPage(s)
	g.page.layout(float64(g.width))
	g.page.restore(old)
	g.ctrl.setShift(s.BackgroundShift)
	g.logger.Printf("settings reloaded")
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	cur := image.Pt(mx, my)
	if !g.cursorSeen || cur != g.lastCursor {
		g.cursorSeen = true
		g.lastCursor = cur
		g.trail.OnPointerMove(float64(mx), float64(my))
	}
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.gate.Click() {
			return
		}
		if !g.gate.Blocking() {
			g.click(x, y)
		}
	}

	if g.widget.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.widget.dragging = false
		} else if g.player != nil {
			g.setVolume(g.widget.sliderValue(x))
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 && !g.gate.Blocking() {
		g.scroll.Wheel(dy)
	}
}

func (g *Game) click(x, y float64) {
	w := g.widget
	if w.bounds.Contains(x, y) {
		switch {
		case !w.hasTrack:
			g.chooseTrack()
		case w.playButton().Contains(x, y):
			g.player.TogglePlay()
		case w.muteButton().Contains(x, y):
			g.player.ToggleMute()
		case w.slider().Contains(x, y):
			w.dragging = true
			g.setVolume(w.sliderValue(x))
		}
		return
	}

	if y < config.NavHeight {
		if id, ok := g.navAt(x); ok {
			g.scrollToSection(id)
		}
		return
	}

	py := y + g.scroll.Offset()
	if c := g.page.buttonAt(x, py); c != nil {
		g.ripples.Spawn(c.button, x, py)
		if c.spec.Link != "" {
			g.scrollToSection(c.spec.Link)
		}
	}
}

func (g *Game) setVolume(v float64) {
	g.player.SetVolume(v)
	g.widget.volume = g.player.Volume()
}

func (g *Game) scrollToSection(id string) {
	if y, ok := g.page.anchor(id); ok {
		g.scroll.ScrollTo(y)
	}
}

type navLink struct {
	id   string
	text string
	rect fx.Rect
}

// navLinks lays the section titles out left to right after the page title.
func (g *Game) navLinks() []navLink {
	links := make([]navLink, 0, len(g.page.sections))
	x := float64(config.ContentMargin + len(g.page.title)*charWidth + 40)
	for _, sec := range g.page.sections {
		w := float64(len(sec.spec.Title)*charWidth + 16)
		links = append(links, navLink{
			id:   sec.spec.ID,
			text: sec.spec.Title,
			rect: fx.Rect{X: x, Y: 0, W: w, H: config.NavHeight},
		})
		x += w + 8
	}
	return links
}

func (g *Game) navAt(x float64) (string, bool) {
	for _, l := range g.navLinks() {
		if l.rect.Contains(x, 0) {
			return l.id, true
		}
	}
	return "", false
}

func (g *Game) Draw(screen *ebiten.Image) {
	angle, rainbow := g.ctrl.rainbowAngle()
	target := screen
	if rainbow {
		target = g.offscreen()
		target.Clear()
	}

	g.drawBackground(target)
	g.drawAmbient(target)
	g.page.draw(target, g.scroll.Offset(), &g.ripples)
	g.drawNav(target)
	g.widget.draw(target)

	g.trail.OnTick()
	target.DrawImage(g.trailSurface.Image(), nil)

	g.drawGate(target)

	if rainbow {
		var cm colorm.ColorM
		cm.RotateHue(angle)
		colorm.DrawImage(screen, target, cm, &colorm.DrawImageOptions{})
	}

	if g.debug {
		msg := fmt.Sprintf("TPS %.0f  FPS %.0f  trail %d  scroll %.0f", ebiten.ActualTPS(), ebiten.ActualFPS(), g.trail.Len(), g.scroll.Offset())
		if g.player != nil {
			msg += fmt.Sprintf("  %s %s", filepath.Base(g.track.Path()), g.player.State())
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, g.height-20)
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 8, config.NavHeight+4)
	}
}

func (g *Game) offscreen() *ebiten.Image {
	if g.frame != nil {
		b := g.frame.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return g.frame
		}
		g.frame.Deallocate()
	}
	g.frame = ebiten.NewImage(g.width, g.height)
	return g.frame
}

// drawBackground fills the window with the three-stop gradient, in bands.
func (g *Game) drawBackground(dst *ebiten.Image) {
	const band = 4
	stops := g.ctrl.background()
	top, mid, bottom := hslColor(stops[0], 1), hslColor(stops[1], 1), hslColor(stops[2], 1)
	for y := 0; y < g.height; y += band {
		t := float64(y) / float64(g.height)
		c := lerpColor(top, mid, t*2)
		if t > 0.5 {
			c = lerpColor(mid, bottom, (t-0.5)*2)
		}
		vector.DrawFilledRect(dst, 0, float32(y), float32(g.width), band, c, false)
	}
}

func (g *Game) drawAmbient(dst *ebiten.Image) {
	g.ambient.Each(float64(g.width), float64(g.height), func(x, y, size, alpha float64) {
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size/2), withAlpha(accentColor, alpha*0.4), true)
	})
}

func (g *Game) drawNav(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, float32(g.width), config.NavHeight, panelColor, false)
	vector.StrokeLine(dst, 0, config.NavHeight, float32(g.width), config.NavHeight, 1, panelBorder, false)
	ebitenutil.DebugPrintAt(dst, g.page.title, config.ContentMargin, 11)
	for _, l := range g.navLinks() {
		ebitenutil.DebugPrintAt(dst, l.text, int(l.rect.X)+8, 11)
	}
}

func (g *Game) drawGate(dst *ebiten.Image) {
	if !g.gate.Visible() {
		return
	}
	a := g.gate.Alpha()
	vector.DrawFilledRect(dst, 0, 0, float32(g.width), float32(g.height), withAlpha(panelColor, a*1.2), false)

	cx, cy := g.width/2, g.height/2
	switch g.gate.State() {
	case fx.GateLoading:
		spin := float64(time.Now().UnixMilli()%1000) / 1000
		for i := 0; i < 8; i++ {
			t := float64(i) / 8
			x, y := orbit(float64(cx), float64(cy), 18, spin+t)
			vector.DrawFilledCircle(dst, float32(x), float32(y), 3, withAlpha(accentColor, t), true)
		}
	case fx.GateWaiting:
		ebitenutil.DebugPrintAt(dst, "click to enter", cx-7*charWidth, cy-8)
	case fx.GateEntered:
		ebitenutil.DebugPrintAt(dst, g.page.title, cx-len(g.page.title)*charWidth/2, cy-8)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.trail.OnResize(w, h)
		g.page.layout(float64(w))
		g.widget.place(w, h)
	}
	return w, h
}

// Close ends the page session and releases the audio.
func (g *Game) Close() error {
	g.ctrl.teardown()
	var err error
	if g.track != nil {
		err = g.track.Close()
	}
	if g.watcher != nil {
		if werr := g.watcher.Close(); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}
