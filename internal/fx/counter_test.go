package fx

import (
	"testing"
	"time"
)

func TestCounterReachesTargetExactly(t *testing.T) {
	c := NewCounter(100)
	if !c.Start() {
		t.Fatal("Start on a fresh counter returned false")
	}

	prev := 0
	steps := 0
	for !c.Done() {
		c.Step()
		steps++
		v := c.Value()
		if v > 100 {
			t.Fatalf("step %d: value %d exceeds target", steps, v)
		}
		if v < prev {
			t.Fatalf("step %d: value went down from %d to %d", steps, prev, v)
		}
		prev = v
		if steps > 200 {
			t.Fatal("counter did not finish")
		}
	}

	if c.Value() != 100 || c.Text() != "100" {
		t.Errorf("final = %d (%q), want 100", c.Value(), c.Text())
	}
	// 2000ms at 16ms per step, allowing for float accumulation.
	if steps < 125 || steps > 126 {
		t.Errorf("steps = %d, want 125 or 126", steps)
	}
}

func TestCounterRunsOnce(t *testing.T) {
	c := NewCounter(10)
	c.Start()
	c.Advance(CounterDuration + 100*time.Millisecond)
	if !c.Done() || c.Value() != 10 {
		t.Fatalf("done=%v value=%d, want done at 10", c.Done(), c.Value())
	}

	if c.Start() {
		t.Error("second Start returned true")
	}
	c.Advance(time.Second)
	if c.Value() != 10 {
		t.Errorf("value = %d after re-entry, want 10", c.Value())
	}
}

func TestCounterIdleUntilStarted(t *testing.T) {
	c := NewCounter(50)
	c.Advance(time.Second)
	c.Step()
	if c.Value() != 0 || c.Started() {
		t.Errorf("value=%d started=%v before Start", c.Value(), c.Started())
	}
}

func TestCounterAdvanceWholeTicks(t *testing.T) {
	c := NewCounter(1250)
	c.Start()
	c.Advance(8 * time.Millisecond)
	if c.Value() != 0 {
		t.Errorf("value = %d after half a tick, want 0", c.Value())
	}
	c.Advance(8 * time.Millisecond)
	if v := c.Value(); v != 10 && v != 9 {
		t.Errorf("value = %d after one tick, want about 10", v)
	}
}
