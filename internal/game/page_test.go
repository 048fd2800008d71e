package game

import (
	"testing"
	"time"

	"github.com/iburimskiy/landing-fx/internal/config"
)

// counterRun is comfortably longer than a counter animation.
const counterRun = 3 * time.Second

func laidOut(width float64) *page {
	p := newPage(config.Default())
	p.layout(width)
	return p
}

func TestPageLayout(t *testing.T) {
	p := laidOut(config.WindowWidth)

	y, ok := p.anchor("about")
	if !ok || y != heroHeight {
		t.Errorf("anchor(about) = %v, %v, want %d", y, ok, heroHeight)
	}
	if _, ok := p.anchor("missing"); ok {
		t.Error("anchor found an unknown section")
	}

	prevBottom := 0.0
	for _, sec := range p.sections {
		if sec.rect.Y < prevBottom {
			t.Errorf("section %s overlaps the one above", sec.spec.ID)
		}
		prevBottom = sec.rect.Y + sec.rect.H
		for _, c := range sec.cards {
			if c.rect.Y < sec.rect.Y || c.rect.Y+c.rect.H > prevBottom {
				t.Errorf("card %s outside section %s", c.spec.Title, sec.spec.ID)
			}
			b := c.button
			if !c.rect.Contains(b.X, b.Y) || !c.rect.Contains(b.X+b.W, b.Y+b.H) {
				t.Errorf("button of %s outside its card", c.spec.Title)
			}
		}
	}
	if p.height < prevBottom {
		t.Errorf("page height %v short of last section %v", p.height, prevBottom)
	}
}

func TestPageLayoutWraps(t *testing.T) {
	p := laidOut(400)
	var products *section
	for _, sec := range p.sections {
		if sec.spec.ID == "products" {
			products = sec
		}
	}
	if products == nil {
		t.Fatal("no products section")
	}
	first, second := products.cards[0].rect, products.cards[1].rect
	if second.X != config.ContentMargin || second.Y <= first.Y {
		t.Errorf("second card at (%v, %v), want next row", second.X, second.Y)
	}
}

func TestPageCountersStartOnReveal(t *testing.T) {
	p := laidOut(config.WindowWidth)
	stats := p.sections[1]

	p.advance(16*time.Millisecond, 0, 100, 0, 0)
	for _, st := range stats.stats {
		if st.counter.Started() {
			t.Fatalf("counter %s started off screen", st.label)
		}
	}

	view := stats.rect.Y - 50
	p.advance(16*time.Millisecond, view, config.WindowHeight, 0, 0)
	p.advance(counterRun, view, config.WindowHeight, 0, 0)
	for _, st := range stats.stats {
		if !st.counter.Done() || st.counter.Value() != st.counter.Target {
			t.Errorf("counter %s = %d, want %d", st.label, st.counter.Value(), st.counter.Target)
		}
	}

	// scrolling away and back does not replay
	p.advance(16*time.Millisecond, 0, 100, 0, 0)
	p.advance(16*time.Millisecond, view, config.WindowHeight, 0, 0)
	for _, st := range stats.stats {
		if st.counter.Start() {
			t.Errorf("counter %s restarted", st.label)
		}
	}
}

func TestButtonAtNeedsReveal(t *testing.T) {
	p := laidOut(config.WindowWidth)
	var sec *section
	for _, s := range p.sections {
		if s.spec.ID == "products" {
			sec = s
		}
	}
	c := sec.cards[0]
	x, y := c.button.X+2, c.button.Y+2

	if p.buttonAt(x, y) != nil {
		t.Error("button clickable before its section is revealed")
	}
	p.advance(time.Second, sec.rect.Y, config.WindowHeight, 0, 0)
	if got := p.buttonAt(x, y); got != c {
		t.Errorf("buttonAt = %v, want first products card", got)
	}
	if p.buttonAt(c.rect.X+2, c.rect.Y+2) != nil {
		t.Error("card body treated as a button")
	}
}

func TestPageRestore(t *testing.T) {
	old := laidOut(config.WindowWidth)
	stats := old.sections[1]
	old.advance(counterRun, stats.rect.Y, config.WindowHeight, 0, 0)
	old.advance(counterRun, stats.rect.Y, config.WindowHeight, 0, 0)

	s := config.Default()
	s.Sections[1].Stats[0].Count = 7
	p := newPage(s)
	p.layout(config.WindowWidth)
	p.restore(old)

	got := p.sections[1]
	if !got.reveal.Revealed() {
		t.Error("reveal state lost")
	}
	if got.stats[0].counter.Started() {
		t.Error("counter with a new target was carried over")
	}
	if got.stats[1].counter != stats.stats[1].counter {
		t.Error("unchanged counter not carried over")
	}
}
