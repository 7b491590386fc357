package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	Track("terrain.ApplyClip")()
	Track("terrain.ApplyClip")()
	Track("clip.Dig")()

	if got := Count("terrain.ApplyClip"); got != 2 {
		t.Fatalf("count: got %d, want 2", got)
	}
	ss := Snapshot()
	if len(ss) != 2 {
		t.Fatalf("snapshot: got %d entries, want 2", len(ss))
	}
	if SumWithPrefix("terrain.") != ss["terrain.ApplyClip"] {
		t.Errorf("prefix sum mismatch")
	}

	ResetFrame()
	if len(Snapshot()) != 0 || Count("clip.Dig") != 0 {
		t.Errorf("reset left data behind")
	}
}

func TestTopN(t *testing.T) {
	ResetFrame()
	mu.Lock()
	stepTotals["a"] = 3 * time.Millisecond
	stepTotals["b"] = 1500 * time.Microsecond
	stepTotals["c"] = time.Microsecond
	mu.Unlock()

	got := TopN(2)
	if got != "a:3ms, b:1.5ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if n := strings.Count(TopN(10), ":"); n != 3 {
		t.Errorf("TopN(10) returned %d entries, want 3", n)
	}
	ResetFrame()
}
