package state

import "sync"

// Scheduler dispatches subscription callbacks.
//
// The value graph itself is single-threaded and synchronous; a Scheduler is
// the seam through which callers marshal notifications onto their own loop,
// for example when a timer callback must re-enter the graph from the owning
// goroutine.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule dispatches fn using the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// Direct runs callbacks immediately in the caller goroutine.
var Direct Scheduler = SchedulerFunc(func(fn func()) {
	if fn != nil {
		fn()
	}
})

// Queue batches callbacks for explicit flushing, typically once per frame
// or per game tick.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues a callback for later flushing.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Flush executes queued callbacks and returns the count.
// Callbacks enqueued while flushing run on the next Flush.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
