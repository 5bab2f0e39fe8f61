package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight wall-clock profiler for the hot operations of the core
// (generation, meshing, raycasting). Totals accumulate until Reset.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given
// name. Usage: defer profiling.Track("meshing.Mesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// Reset clears all accumulated totals.
func Reset() {
	mu.Lock()
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals as "name: total (count calls)" lines,
// largest first.
func TopN(n int) string {
	mu.Lock()
	type entry struct {
		name  string
		total time.Duration
		count int
	}
	list := make([]entry, 0, len(totals))
	for k, v := range totals {
		list = append(list, entry{name: k, total: v, count: counts[k]})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].total > list[j].total })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s: %s (%d calls)", e.name, e.total.Round(10*time.Microsecond), e.count))
	}
	return strings.Join(parts, "\n")
}
