// Package state provides the observable-value primitives the stat engine is
// built on: read-write holders, read-only projections, and the subscription
// plumbing that propagates change notifications through a value graph.
//
// Notifications carry no payload; subscribers re-read whatever values they
// depend on. Delivery is synchronous on the mutating goroutine unless a
// Scheduler is supplied at subscription time.
package state

// Subscribable emits change notifications.
// The returned function removes the subscription and is safe to call twice.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable exposes a read-only observable value.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable exposes a read-write observable value.
// Set always notifies, even when the stored value is unchanged; dependents
// rely on receiving a signal for same-value writes.
type Writable[T any] interface {
	Readable[T]
	Set(value T)
	Update(fn func(T) T)
}
