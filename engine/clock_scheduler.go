package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fruit-catcher/core"
	"github.com/lixenwraith/fruit-catcher/parameter"
)

// ClockScheduler runs timers, frame callbacks and posted tasks on one goroutine
// Wall-clock timers only enqueue; the loop goroutine is the sole executor
type ClockScheduler struct {
	queue *TaskQueue
	clock TimeProvider

	frameInterval time.Duration
	frameMu       sync.Mutex
	frameTasks    []*task

	// Frame counter for metrics
	frameCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewClockScheduler creates a scheduler with the given frame interval
// A non-positive interval falls back to parameter.FrameInterval
func NewClockScheduler(frameInterval time.Duration) *ClockScheduler {
	if frameInterval <= 0 {
		frameInterval = parameter.FrameInterval
	}
	return &ClockScheduler{
		queue:         NewTaskQueue(),
		clock:         NewMonotonicTimeProvider(),
		frameInterval: frameInterval,
		frameTasks:    make([]*task, 0, 8),
		stopChan:      make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.stopped.Load() {
		return
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.loop)
	}
}

// Stop halts the loop and waits for the running callback to return
// Must not be called from a scheduler callback
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		cs.stopped.Store(true)
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// AfterFunc implements Scheduler
func (cs *ClockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := newTask(fn)
	if cs.stopped.Load() {
		t.state.Store(taskCancelled)
		return t
	}
	t.timer = time.AfterFunc(d, func() {
		cs.queue.Push(t.run)
	})
	return t
}

// NextFrame implements Scheduler
func (cs *ClockScheduler) NextFrame(fn func()) Timer {
	t := newTask(fn)
	if cs.stopped.Load() {
		t.state.Store(taskCancelled)
		return t
	}
	cs.frameMu.Lock()
	cs.frameTasks = append(cs.frameTasks, t)
	cs.frameMu.Unlock()
	return t
}

// Post implements Scheduler, tasks posted after Stop are dropped
func (cs *ClockScheduler) Post(fn func()) {
	if cs.stopped.Load() {
		return
	}
	cs.queue.Push(fn)
}

// Now implements Scheduler
func (cs *ClockScheduler) Now() time.Time {
	return cs.clock.Now()
}

// Frames returns the number of frames flushed since Start
func (cs *ClockScheduler) Frames() uint64 {
	return cs.frameCount.Load()
}

// loop is the single executor of all callbacks
func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return

		case <-cs.queue.Wake():
			cs.drain()

		case <-ticker.C:
			// Tasks queued before the frame run first so input lands in this frame
			cs.drain()
			cs.flushFrame()
		}
	}
}

// drain runs queued tasks in FIFO order
func (cs *ClockScheduler) drain() {
	for _, fn := range cs.queue.Consume() {
		select {
		case <-cs.stopChan:
			return
		default:
		}
		fn()
	}
}

// flushFrame runs the callbacks registered for this frame
// Callbacks registered during the flush wait for the next frame
func (cs *ClockScheduler) flushFrame() {
	cs.frameMu.Lock()
	batch := cs.frameTasks
	cs.frameTasks = make([]*task, 0, cap(batch))
	cs.frameMu.Unlock()

	cs.frameCount.Add(1)
	for _, t := range batch {
		t.run()
	}
}
