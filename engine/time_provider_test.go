package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProviderNeverGoesBack(t *testing.T) {
	var p TimeProvider = NewMonotonicTimeProvider()

	prev := p.Now()
	for i := 0; i < 1000; i++ {
		now := p.Now()
		if now.Before(prev) {
			t.Fatalf("reading %d went backwards: %v < %v", i, now, prev)
		}
		prev = now
	}
}

func TestClockSchedulerNowTracksWallClock(t *testing.T) {
	cs := NewClockScheduler(0)

	before := time.Now()
	now := cs.Now()
	time.Sleep(5 * time.Millisecond)
	later := cs.Now()

	if now.Before(before) {
		t.Errorf("Now() = %v, earlier than wall clock %v", now, before)
	}
	if d := later.Sub(now); d < 5*time.Millisecond {
		t.Errorf("elapsed %v across a 5ms sleep", d)
	}
}
