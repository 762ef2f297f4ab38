package profiler

import (
	"testing"
	"time"
)

func fakeClock(t *testing.T) *int64 {
	t.Helper()
	var clock int64
	prev := now
	now = func() int64 { return clock }
	t.Cleanup(func() { now = prev })
	return &clock
}

func TestPhaseTimings(t *testing.T) {
	clock := fakeClock(t)

	*clock = 0
	end := Start("test.layout")
	*clock = 100
	end()

	*clock = 200
	end = Start("test.layout")
	*clock = 1200
	end()

	p, ok := Lookup("test.layout")
	if !ok {
		t.Fatal("Lookup(test.layout) found nothing")
	}
	if p.Count != 2 || p.Last != 1000 {
		t.Errorf("phase = %+v, want 2 samples, last 1000ns", p)
	}
	// 100 + (1000-100)*0.1
	if p.Avg != 190*time.Nanosecond {
		t.Errorf("Avg = %v, want 190ns", p.Avg)
	}
}

func TestPhaseClockBackwards(t *testing.T) {
	clock := fakeClock(t)
	*clock = 500
	end := Start("test.backwards")
	*clock = 400
	end()
	if p, _ := Lookup("test.backwards"); p.Last != 0 {
		t.Errorf("Last = %v, want 0", p.Last)
	}
}

func TestPhasesInFirstUseOrder(t *testing.T) {
	fakeClock(t)
	Start("test.first")()
	Start("test.second")()
	Start("test.first")()

	var got []string
	for _, p := range Phases(nil) {
		if p.Name == "test.first" || p.Name == "test.second" {
			got = append(got, p.Name)
		}
	}
	if len(got) != 2 || got[0] != "test.first" || got[1] != "test.second" {
		t.Errorf("phases = %v, want [test.first test.second]", got)
	}
	if _, ok := Lookup("test.never"); ok {
		t.Error("Lookup found a scope that never ran")
	}
}
