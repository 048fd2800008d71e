package game

import (
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/landing-fx/internal/config"
	"github.com/iburimskiy/landing-fx/internal/fx"
)

const (
	lineHeight = 16
	charWidth  = 6
	heroHeight = 140
)

var (
	cardColor   = color.NRGBA{R: 20, G: 26, B: 44, A: 230}
	cardBorder  = color.NRGBA{R: 50, G: 70, B: 110, A: 255}
	buttonColor = color.NRGBA{R: 30, G: 110, B: 210, A: 255}
	glowColor   = color.NRGBA{R: 30, G: 144, B: 255, A: 77}
	rippleColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type stat struct {
	label   string
	counter *fx.Counter
	rect    fx.Rect
}

type card struct {
	spec   config.CardSpec
	rect   fx.Rect
	button fx.Rect
	glow   fx.Glow
}

type section struct {
	spec   config.SectionSpec
	rect   fx.Rect
	reveal fx.Reveal
	stats  []*stat
	cards  []*card
}

// page is the scrolling content. Rects are in page coordinates; y grows down
// from the top of the page, not the window.
type page struct {
	title    string
	tagline  string
	sections []*section
	width    float64
	height   float64
}

func newPage(s config.Settings) *page {
	p := &page{title: s.Title, tagline: s.Tagline}
	for _, spec := range s.Sections {
		sec := &section{spec: spec}
		for _, st := range spec.Stats {
			sec.stats = append(sec.stats, &stat{label: st.Label, counter: fx.NewCounter(st.Count)})
		}
		for _, c := range spec.Cards {
			sec.cards = append(sec.cards, &card{spec: c})
		}
		p.sections = append(p.sections, sec)
	}
	return p
}

// layout places everything for a window of the given width.
func (p *page) layout(width float64) {
	p.width = width
	inner := max(width-2*config.ContentMargin, config.CardWidth)
	y := float64(config.NavHeight + heroHeight)

	for _, sec := range p.sections {
		top := y
		y += config.SectionPadding + lineHeight*2
		y += float64(len(sec.spec.Text) * lineHeight)
		if len(sec.spec.Text) > 0 {
			y += config.SectionPadding / 2
		}

		x := float64(config.ContentMargin)
		for _, st := range sec.stats {
			if x+config.StatWidth > config.ContentMargin+inner {
				x = config.ContentMargin
				y += config.StatHeight + config.CardGap
			}
			st.rect = fx.Rect{X: x, Y: y, W: config.StatWidth, H: config.StatHeight}
			x += config.StatWidth + config.CardGap
		}
		if len(sec.stats) > 0 {
			y += config.StatHeight + config.CardGap
		}

		x = config.ContentMargin
		for _, c := range sec.cards {
			if x+config.CardWidth > config.ContentMargin+inner {
				x = config.ContentMargin
				y += config.CardHeight + config.CardGap
			}
			c.rect = fx.Rect{X: x, Y: y, W: config.CardWidth, H: config.CardHeight}
			c.button = fx.Rect{
				X: x + 16,
				Y: y + config.CardHeight - config.ButtonHeight - 16,
				W: config.ButtonWidth,
				H: config.ButtonHeight,
			}
			x += config.CardWidth + config.CardGap
		}
		if len(sec.cards) > 0 {
			y += config.CardHeight + config.CardGap
		}

		y += config.SectionPadding
		sec.rect = fx.Rect{X: config.ContentMargin / 2, Y: top, W: width - config.ContentMargin, H: y - top}
		y += config.SectionGap
	}
	p.height = y
}

// anchor returns the scroll offset that puts section id under the nav bar.
func (p *page) anchor(id string) (float64, bool) {
	for _, sec := range p.sections {
		if sec.spec.ID == id {
			return sec.rect.Y - config.NavHeight, true
		}
	}
	return 0, false
}

// advance runs reveals, counters and glows. (px, py) is the pointer in page
// coordinates.
func (p *page) advance(dt time.Duration, scrollY, viewH, px, py float64) {
	for _, sec := range p.sections {
		if sec.reveal.Observe(sec.rect.Y, sec.rect.Y+sec.rect.H, scrollY, scrollY+viewH) {
			for _, st := range sec.stats {
				st.counter.Start()
			}
		}
		sec.reveal.Advance(dt)
		for _, st := range sec.stats {
			st.counter.Advance(dt)
		}
		for _, c := range sec.cards {
			c.glow.Track(px, py, c.rect)
			c.glow.Advance(dt)
		}
	}
}

// buttonAt returns the card whose button contains the page point, if the
// card's section is visible.
func (p *page) buttonAt(x, y float64) *card {
	for _, sec := range p.sections {
		if !sec.reveal.Revealed() {
			continue
		}
		for _, c := range sec.cards {
			if c.button.Contains(x, y) {
				return c
			}
		}
	}
	return nil
}

// restore carries animation state over from a previous page with the same
// sections, so a settings reload does not replay counters.
func (p *page) restore(old *page) {
	if old == nil {
		return
	}
	prev := make(map[string]*section, len(old.sections))
	for _, sec := range old.sections {
		prev[sec.spec.ID] = sec
	}
	for _, sec := range p.sections {
		o, ok := prev[sec.spec.ID]
		if !ok {
			continue
		}
		sec.reveal = o.reveal
		for i, st := range sec.stats {
			if i < len(o.stats) && o.stats[i].counter.Target == st.counter.Target {
				st.counter = o.stats[i].counter
			}
		}
	}
}

func (p *page) draw(dst *ebiten.Image, scrollY float64, ripples *fx.Ripples) {
	hy := int(config.NavHeight + heroHeight/2 - scrollY)
	ebitenutil.DebugPrintAt(dst, strings.ToUpper(p.title), config.ContentMargin, hy-lineHeight)
	ebitenutil.DebugPrintAt(dst, p.tagline, config.ContentMargin, hy+4)

	for _, sec := range p.sections {
		if sec.reveal.Opacity() <= 0 {
			continue
		}
		dy := sec.reveal.Slide() - scrollY
		p.drawSection(dst, sec, dy)
	}

	for _, r := range ripples.Items() {
		clip := image.Rect(int(r.Clip.X), int(r.Clip.Y-scrollY), int(r.Clip.X+r.Clip.W), int(r.Clip.Y+r.Clip.H-scrollY))
		sub, ok := dst.SubImage(clip).(*ebiten.Image)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(sub, float32(r.CX), float32(r.CY-scrollY), float32(r.Radius()), withAlpha(rippleColor, r.Alpha), true)
	}
}

func (p *page) drawSection(dst *ebiten.Image, sec *section, dy float64) {
	a := sec.reveal.Opacity()
	x := int(sec.rect.X + config.SectionPadding)
	y := int(sec.rect.Y + dy + config.SectionPadding)

	ebitenutil.DebugPrintAt(dst, sec.spec.Title, x, y)
	vector.StrokeLine(dst, float32(x), float32(y+lineHeight+2), float32(x+len(sec.spec.Title)*charWidth), float32(y+lineHeight+2), 1, withAlpha(buttonColor, a), false)
	for i, line := range sec.spec.Text {
		ebitenutil.DebugPrintAt(dst, line, x, y+lineHeight*2+i*lineHeight)
	}

	for _, st := range sec.stats {
		r := st.rect
		ry := float32(r.Y + dy)
		vector.DrawFilledRect(dst, float32(r.X), ry, float32(r.W), float32(r.H), withAlpha(cardColor, a), false)
		vector.StrokeRect(dst, float32(r.X), ry, float32(r.W), float32(r.H), 1, withAlpha(cardBorder, a), false)
		ebitenutil.DebugPrintAt(dst, st.counter.Text(), int(r.X)+14, int(ry)+16)
		ebitenutil.DebugPrintAt(dst, st.label, int(r.X)+14, int(ry)+38)
	}

	for _, c := range sec.cards {
		r := c.rect
		ry := r.Y + dy
		vector.DrawFilledRect(dst, float32(r.X), float32(ry), float32(r.W), float32(r.H), withAlpha(cardColor, a), false)
		if c.glow.Alpha() > 0 {
			drawGlow(dst, fx.Rect{X: r.X, Y: ry, W: r.W, H: r.H}, c.glow, a)
		}
		vector.StrokeRect(dst, float32(r.X), float32(ry), float32(r.W), float32(r.H), 1, withAlpha(cardBorder, a), false)
		ebitenutil.DebugPrintAt(dst, c.spec.Title, int(r.X)+16, int(ry)+16)
		ebitenutil.DebugPrintAt(dst, c.spec.Body, int(r.X)+16, int(ry)+36)

		if c.spec.Button != "" {
			b := c.button
			by := float32(b.Y + dy)
			vector.DrawFilledRect(dst, float32(b.X), by, float32(b.W), float32(b.H), withAlpha(buttonColor, a), false)
			tx := int(b.X + (b.W-float64(len(c.spec.Button)*charWidth))/2)
			ebitenutil.DebugPrintAt(dst, c.spec.Button, tx, int(by)+9)
		}
	}
}

// drawGlow approximates a radial gradient with rings that fade outwards,
// clipped to the card.
func drawGlow(dst *ebiten.Image, card fx.Rect, g fx.Glow, opacity float64) {
	const rings = 6
	clip := image.Rect(int(card.X), int(card.Y), int(card.X+card.W), int(card.Y+card.H))
	sub, ok := dst.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}
	cx, cy := float32(card.X+g.X), float32(card.Y+g.Y)
	for i := 0; i < rings; i++ {
		t := float64(i) / rings
		r := float32(config.GlowRadius * (1 - t))
		c := withAlpha(glowColor, g.Alpha()*opacity*(t+1/float64(rings))*0.5)
		vector.DrawFilledCircle(sub, cx, cy, r, c, true)
	}
}
