// Package profiler times named scopes of a frame. Every build keeps the last
// and smoothed duration of each scope name; builds with the profile tag also
// record each scope into a ring that Dump writes as a speedscope file.
package profiler

import (
	"sync"
	"time"
)

// weight of the newest sample in Phase.Avg
const smoothing = 0.1

// Phase is the timing of one scope name.
type Phase struct {
	Name  string
	Last  time.Duration
	Avg   time.Duration
	Count int
}

var (
	mu     sync.Mutex
	names  []string
	ids    = map[string]int{}
	phases []Phase

	now = func() int64 { return time.Now().UnixNano() }
)

// Start begins a scope and returns the func that ends it.
func Start(name string) func() {
	id := intern(name)
	start := now()
	trace(id, true, start)
	return func() {
		end := max(now(), start)
		trace(id, false, end)
		observe(id, time.Duration(end-start))
	}
}

func intern(name string) int {
	mu.Lock()
	defer mu.Unlock()
	if id, ok := ids[name]; ok {
		return id
	}
	id := len(names)
	ids[name] = id
	names = append(names, name)
	phases = append(phases, Phase{Name: name})
	return id
}

func observe(id int, d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	p := &phases[id]
	p.Last = d
	if p.Count == 0 {
		p.Avg = d
	} else {
		p.Avg += time.Duration(float64(d-p.Avg) * smoothing)
	}
	p.Count++
}

// Phases appends the timing of every scope seen so far to dst, in order of
// first use.
func Phases(dst []Phase) []Phase {
	mu.Lock()
	defer mu.Unlock()
	return append(dst, phases...)
}

func Lookup(name string) (Phase, bool) {
	mu.Lock()
	defer mu.Unlock()
	id, ok := ids[name]
	if !ok {
		return Phase{}, false
	}
	return phases[id], true
}
