package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-section CPU timings, accumulated until the next Reset.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	calls  = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("desk.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		calls[name]++
		mu.Unlock()
	}
}

// Reset clears all accumulated timings.
func Reset() {
	mu.Lock()
	clear(totals)
	clear(calls)
	mu.Unlock()
}

// Sample is the accumulated time for one tracked section.
type Sample struct {
	Name  string
	Total time.Duration
	Calls int
}

// Average returns the mean time per call.
func (s Sample) Average() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

// Snapshot returns the current samples, slowest total first.
func Snapshot() []Sample {
	mu.Lock()
	out := make([]Sample, 0, len(totals))
	for k, v := range totals {
		out = append(out, Sample{Name: k, Total: v, Calls: calls[k]})
	}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n slowest sections by average time per call.
// Example: "renderer.Render:4.2ms, desk.Render:3.9ms"
func TopN(n int) string {
	ss := Snapshot()
	sort.SliceStable(ss, func(i, j int) bool { return ss[i].Average() > ss[j].Average() })
	if n > len(ss) {
		n = len(ss)
	}
	parts := make([]string, 0, n)
	for _, s := range ss[:n] {
		parts = append(parts, s.Name+":"+formatMs(s.Average()))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
}

// FrameCounter measures frames per second over a fixed reporting window.
type FrameCounter struct {
	Interval time.Duration

	frames int
	start  time.Time
}

// NewFrameCounter creates a counter that reports every interval.
func NewFrameCounter(interval time.Duration, now time.Time) *FrameCounter {
	return &FrameCounter{Interval: interval, start: now}
}

// Tick counts one frame. When the window has elapsed it returns the
// average FPS over that window and true, then starts a new window.
func (f *FrameCounter) Tick(now time.Time) (float64, bool) {
	f.frames++
	elapsed := now.Sub(f.start)
	if f.Interval <= 0 || elapsed < f.Interval {
		return 0, false
	}
	fps := float64(f.frames) / elapsed.Seconds()
	f.frames = 0
	f.start = now
	return fps, true
}
