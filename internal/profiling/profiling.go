package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight per-step CPU profiler for clip-level insights.

var (
	mu         sync.Mutex
	stepTotals = make(map[string]time.Duration)
	stepCounts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("terrain.ApplyClip")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		stepTotals[name] += d
		stepCounts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears current totals. Call at the start of each scheduler step.
func ResetFrame() {
	mu.Lock()
	clear(stepTotals)
	clear(stepCounts)
	mu.Unlock()
}

// Snapshot returns a copy of current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(stepTotals))
	for k, v := range stepTotals {
		out[k] = v
	}
	return out
}

// Count returns how many times name was tracked since the last reset.
func Count(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return stepCounts[name]
}

// SumWithPrefix adds up every total whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range stepTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats top N durations from the current totals.
// Example: "terrain.ApplyClip:4.2ms, clip.Dig:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, list[i].name+":"+formatMs(ms))
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	// one decimal; drop .0 for whole values
	return strings.TrimSuffix(strconv.FormatFloat(ms, 'f', 1, 64), ".0") + "ms"
}
