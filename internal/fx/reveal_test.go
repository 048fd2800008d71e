package fx

import (
	"testing"

	"github.com/iburimskiy/landing-fx/internal/config"
)

func TestRevealThreshold(t *testing.T) {
	var r Reveal

	if r.Observe(0, 100, 85, 500) {
		t.Fatal("revealed at 15% visibility")
	}
	if !r.Observe(0, 100, 80, 500) {
		t.Fatal("not revealed at 20% visibility")
	}
	if r.Observe(0, 100, 0, 500) {
		t.Error("revealed twice")
	}
	if !r.Revealed() {
		t.Error("Revealed() = false")
	}
}

func TestRevealFadesIn(t *testing.T) {
	var r Reveal
	if r.Opacity() != 0 || r.Slide() != RevealSlide {
		t.Fatalf("hidden opacity=%f slide=%f", r.Opacity(), r.Slide())
	}
	r.Observe(0, 100, 0, 100)
	r.Advance(config.RevealDuration)
	r.Advance(config.RevealDuration)
	if r.Opacity() != 1 || r.Slide() != 0 {
		t.Errorf("shown opacity=%f slide=%f", r.Opacity(), r.Slide())
	}
}

func TestRevealEmptySpan(t *testing.T) {
	var r Reveal
	if r.Observe(50, 50, 0, 100) {
		t.Error("empty section revealed")
	}
}
