package engine

import "sync"

// TaskQueue is an unbounded MPSC FIFO of callbacks for the scheduler loop
// Thread-Safety:
//   - Push: any goroutine
//   - Consume: single consumer (scheduler loop)
//
// Overflow: none, the queue grows; tasks are never dropped
type TaskQueue struct {
	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}
}

// NewTaskQueue creates an empty queue
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		tasks: make([]func(), 0, 64),
		wake:  make(chan struct{}, 1),
	}
}

// Push appends a task and signals the consumer
func (q *TaskQueue) Push(fn func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
		// Signal already pending
	}
}

// Consume returns all pending tasks in FIFO order and empties the queue
func (q *TaskQueue) Consume() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil
	}
	result := q.tasks
	q.tasks = make([]func(), 0, cap(result))
	return result
}

// Wake returns the channel signalled on Push
func (q *TaskQueue) Wake() <-chan struct{} {
	return q.wake
}

// Len returns the number of pending tasks
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
