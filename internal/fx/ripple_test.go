package fx

import (
	"testing"
	"time"
)

func TestRippleLifetime(t *testing.T) {
	var rs Ripples
	r := rs.Spawn(Rect{X: 10, Y: 10, W: 120, H: 32}, 40, 20)

	if r.Size != 120 {
		t.Errorf("size = %f, want 120", r.Size)
	}
	if r.CX != 40 || r.CY != 20 {
		t.Errorf("centre = (%f,%f), want (40,20)", r.CX, r.CY)
	}

	rs.Advance(RippleDuration / 2)
	if rs.Len() != 1 {
		t.Fatalf("len = %d mid ripple, want 1", rs.Len())
	}
	if r.Scale <= 0 || r.Scale >= RippleEndScale {
		t.Errorf("scale = %f, want between 0 and %d", r.Scale, RippleEndScale)
	}
	if r.Alpha <= 0 || r.Alpha >= RippleStartAlpha {
		t.Errorf("alpha = %f, want between 0 and %f", r.Alpha, RippleStartAlpha)
	}

	rs.Advance(RippleDuration / 2)
	if rs.Len() != 0 {
		t.Errorf("len = %d after %v, want 0", rs.Len(), RippleDuration)
	}
	if r.Scale != RippleEndScale {
		t.Errorf("final scale = %f, want %d", r.Scale, RippleEndScale)
	}
}

func TestRipplesIndependent(t *testing.T) {
	var rs Ripples
	rs.Spawn(Rect{W: 10, H: 10}, 1, 1)
	rs.Advance(400 * time.Millisecond)
	rs.Spawn(Rect{W: 10, H: 10}, 2, 2)
	rs.Advance(200 * time.Millisecond)

	if rs.Len() != 1 || rs.Items()[0].CX != 2 {
		t.Errorf("items = %d, want only the second ripple", rs.Len())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 5}
	if !r.Contains(0, 0) || !r.Contains(9.9, 4.9) {
		t.Error("points inside reported outside")
	}
	if r.Contains(10, 2) || r.Contains(-1, 2) || r.Contains(5, 5) {
		t.Error("points outside reported inside")
	}
}
