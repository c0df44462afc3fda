package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/fruit-catcher/parameter"
)

// ManualScheduler is a deterministic Scheduler driven by the caller
// Time only moves on Advance/Step and frames only run on Frame/Step
// Not safe for concurrent use; drive it from one goroutine
type ManualScheduler struct {
	now           time.Time
	frameInterval time.Duration

	seq    uint64
	timers []*manualTimer
	frame  []*task
	posted []func()

	running    bool
	frameCount uint64
}

type manualTimer struct {
	*task
	due time.Time
	seq uint64
}

// NewManualScheduler creates a manual scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		now:           start,
		frameInterval: parameter.FrameInterval,
	}
}

// SetFrameInterval changes the frame period used by Step
func (m *ManualScheduler) SetFrameInterval(d time.Duration) {
	if d > 0 {
		m.frameInterval = d
	}
}

// AfterFunc implements Scheduler
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	mt := &manualTimer{task: newTask(fn), due: m.now.Add(d), seq: m.seq}
	m.timers = append(m.timers, mt)
	return mt.task
}

// NextFrame implements Scheduler
func (m *ManualScheduler) NextFrame(fn func()) Timer {
	t := newTask(fn)
	m.frame = append(m.frame, t)
	return t
}

// Post implements Scheduler
// Runs fn immediately when idle; inside a callback fn is queued until the callback returns
func (m *ManualScheduler) Post(fn func()) {
	m.exec(fn)
}

// Now implements Scheduler
func (m *ManualScheduler) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d, firing due timers in deadline order
// Timers scheduled by callbacks fire within the same call when they fall due before the target
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		if next.due.After(m.now) {
			m.now = next.due
		}
		m.exec(next.run)
	}
	m.now = target
}

// Frame runs one frame's callbacks
func (m *ManualScheduler) Frame() {
	batch := m.frame
	m.frame = nil
	m.frameCount++
	for _, t := range batch {
		m.exec(t.run)
	}
}

// Step advances d in frame-sized increments, running a frame after each increment
func (m *ManualScheduler) Step(d time.Duration) {
	for elapsed := time.Duration(0); elapsed+m.frameInterval <= d; elapsed += m.frameInterval {
		m.Advance(m.frameInterval)
		m.Frame()
	}
}

// Frames returns the number of frames run
func (m *ManualScheduler) Frames() uint64 {
	return m.frameCount
}

// Pending returns the number of live timers and frame callbacks
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, mt := range m.timers {
		if mt.pending() {
			n++
		}
	}
	for _, t := range m.frame {
		if t.pending() {
			n++
		}
	}
	return n
}

// nextDue removes and returns the earliest live timer due at or before target
func (m *ManualScheduler) nextDue(target time.Time) *manualTimer {
	live := m.timers[:0]
	for _, mt := range m.timers {
		if mt.pending() {
			live = append(live, mt)
		}
	}
	m.timers = live
	if len(m.timers) == 0 {
		return nil
	}

	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due.Equal(m.timers[j].due) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].due.Before(m.timers[j].due)
	})

	first := m.timers[0]
	if first.due.After(target) {
		return nil
	}
	m.timers = m.timers[1:]
	return first
}

// exec runs fn, then any tasks it posted, without nesting callbacks
func (m *ManualScheduler) exec(fn func()) {
	if m.running {
		m.posted = append(m.posted, fn)
		return
	}
	m.running = true
	fn()
	for len(m.posted) > 0 {
		next := m.posted[0]
		m.posted = m.posted[1:]
		next()
	}
	m.running = false
}
