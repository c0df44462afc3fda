package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestClockSchedulerRunsTimers(t *testing.T) {
	cs := NewClockScheduler(5 * time.Millisecond)
	cs.Start()
	defer cs.Stop()

	done := make(chan struct{})
	cs.AfterFunc(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Timer did not fire")
	}
}

func TestClockSchedulerStopTimer(t *testing.T) {
	cs := NewClockScheduler(5 * time.Millisecond)
	cs.Start()
	defer cs.Stop()

	var fired atomic.Bool
	timer := cs.AfterFunc(20*time.Millisecond, func() { fired.Store(true) })
	if !timer.Stop() {
		t.Error("Expected Stop to cancel a pending timer")
	}

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("Stopped timer fired")
	}
}

func TestClockSchedulerFrames(t *testing.T) {
	cs := NewClockScheduler(2 * time.Millisecond)
	cs.Start()
	defer cs.Stop()

	var count atomic.Int32
	done := make(chan struct{})
	var tick func()
	tick = func() {
		if count.Add(1) == 5 {
			close(done)
			return
		}
		cs.NextFrame(tick)
	}
	cs.NextFrame(tick)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Expected 5 frames, got %d", count.Load())
	}
	if cs.Frames() < 5 {
		t.Errorf("Expected frame counter >= 5, got %d", cs.Frames())
	}
}

func TestClockSchedulerSingleThreaded(t *testing.T) {
	cs := NewClockScheduler(time.Millisecond)
	cs.Start()
	defer cs.Stop()

	var inside atomic.Int32
	var overlap atomic.Bool
	var wg sync.WaitGroup

	body := func() {
		if inside.Add(1) > 1 {
			overlap.Store(true)
		}
		time.Sleep(100 * time.Microsecond)
		inside.Add(-1)
		wg.Done()
	}

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go cs.Post(body)
		cs.AfterFunc(time.Duration(i%5)*time.Millisecond, body)
		cs.NextFrame(body)
	}

	wg.Wait()
	if overlap.Load() {
		t.Error("Callbacks executed concurrently")
	}
}

func TestClockSchedulerPostAfterStop(t *testing.T) {
	cs := NewClockScheduler(time.Millisecond)
	cs.Start()
	cs.Stop()

	var ran atomic.Bool
	cs.Post(func() { ran.Store(true) })
	timer := cs.AfterFunc(0, func() { ran.Store(true) })
	time.Sleep(20 * time.Millisecond)

	if ran.Load() {
		t.Error("Task ran after Stop")
	}
	if timer.Stop() {
		t.Error("Timer created after Stop should already be cancelled")
	}

	// Stop is idempotent
	cs.Stop()
}

func TestTaskQueueFIFO(t *testing.T) {
	q := NewTaskQueue()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		q.Push(func() { order = append(order, i) })
	}

	select {
	case <-q.Wake():
	default:
		t.Fatal("Expected wake signal after Push")
	}
	if q.Len() != 3 {
		t.Fatalf("Expected 3 queued tasks, got %d", q.Len())
	}

	for _, fn := range q.Consume() {
		fn()
	}
	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Errorf("Expected FIFO order, got %v", order)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}
