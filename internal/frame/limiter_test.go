package frame

import (
	"testing"
	"time"
)

func TestLimiterUncapped(t *testing.T) {
	l := NewLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		l.Wait(0)
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Fatalf("uncapped wait took %v", d)
	}
}

func TestLimiterPaces(t *testing.T) {
	l := NewLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		l.Wait(200)
	}
	// five frames at 5ms each
	if d := time.Since(start); d < 20*time.Millisecond {
		t.Fatalf("5 frames at 200fps finished in %v", d)
	}
}

func TestClockCapsStep(t *testing.T) {
	c := NewClock(10 * time.Millisecond)
	if dt := c.Tick(); dt != 0 {
		t.Fatalf("first tick = %v, want 0", dt)
	}
	time.Sleep(30 * time.Millisecond)
	if dt := c.Tick(); dt > 0.010+1e-9 {
		t.Fatalf("tick = %v, want capped at 0.010", dt)
	}
}
