// Package engine provides the cooperative scheduling layer game logic runs on.
//
// A Scheduler runs every callback on one logical thread: timer callbacks, frame
// callbacks and posted tasks never execute concurrently with each other, so state
// owned by scheduled code needs no locking.
package engine

import (
	"sync/atomic"
	"time"
)

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop prevents the callback from running
	// Returns false if the callback already ran or was already stopped
	Stop() bool
}

// Scheduler runs callbacks on a single logical thread
type Scheduler interface {
	// AfterFunc runs fn once after d has elapsed
	AfterFunc(d time.Duration, fn func()) Timer

	// NextFrame runs fn on the next frame, the display-refresh analogue
	NextFrame(fn func()) Timer

	// Post runs fn on the scheduler thread as soon as possible
	Post(fn func())

	// Now returns the scheduler's current time
	Now() time.Time
}

// Task lifecycle states
const (
	taskPending int32 = iota
	taskDone
	taskCancelled
)

// task is a one-shot callback shared by both scheduler implementations
type task struct {
	fn    func()
	state atomic.Int32
	timer *time.Timer // Backing wall-clock timer, nil for frame tasks
}

func newTask(fn func()) *task {
	return &task{fn: fn}
}

// run executes the callback unless the task was stopped
func (t *task) run() {
	if t.state.CompareAndSwap(taskPending, taskDone) {
		t.fn()
	}
}

// Stop implements Timer
func (t *task) Stop() bool {
	if !t.state.CompareAndSwap(taskPending, taskCancelled) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

func (t *task) pending() bool {
	return t.state.Load() == taskPending
}
