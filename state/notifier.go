package state

import "sync"

type subscriber struct {
	fn        func()
	scheduler Scheduler
}

// Notifier is a reusable change broadcaster. The zero value is ready to use.
//
// It backs every observable in this module; types embed one and call Notify
// after committing a mutation. Delivery order across subscribers is
// unspecified.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]subscriber
	next int
}

// Subscribe registers a listener invoked synchronously on every change.
func (n *Notifier) Subscribe(fn func()) func() {
	return n.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
// A nil scheduler means synchronous delivery on the notifying goroutine.
func (n *Notifier) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if n == nil || fn == nil {
		return func() {}
	}
	n.mu.Lock()
	if n.subs == nil {
		n.subs = make(map[int]subscriber)
	}
	id := n.next
	n.next++
	n.subs[id] = subscriber{fn: fn, scheduler: scheduler}
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// Notify invokes every subscriber. Subscribers registered or removed by a
// running callback take effect from the next Notify.
func (n *Notifier) Notify() {
	if n == nil {
		return
	}
	n.mu.Lock()
	if len(n.subs) == 0 {
		n.mu.Unlock()
		return
	}
	subs := make([]subscriber, 0, len(n.subs))
	for _, sub := range n.subs {
		subs = append(subs, sub)
	}
	n.mu.Unlock()

	for _, sub := range subs {
		if sub.fn == nil {
			continue
		}
		if sub.scheduler == nil {
			sub.fn()
			continue
		}
		sub.scheduler.Schedule(sub.fn)
	}
}
