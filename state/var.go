package state

import "sync"

// Var holds a mutable value and notifies subscribers on every write.
//
// Writes never short-circuit on equality: setting a Var to the value it
// already holds still notifies. Downstream caches treat any notification as
// an invalidation signal, so suppressing same-value writes would leave them
// unable to distinguish "nothing happened" from "recompute produced the same
// number".
//
// The zero value is ready to use and holds T's zero value.
type Var[T any] struct {
	changes Notifier
	mu      sync.Mutex
	value   T
}

// NewVar creates a Var holding initial.
func NewVar[T any](initial T) *Var[T] {
	return &Var[T]{value: initial}
}

// Get returns the current value.
func (v *Var[T]) Get() T {
	if v == nil {
		var zero T
		return zero
	}
	v.mu.Lock()
	value := v.value
	v.mu.Unlock()
	return value
}

// Set stores value and notifies subscribers unconditionally.
func (v *Var[T]) Set(value T) {
	if v == nil {
		return
	}
	v.mu.Lock()
	v.value = value
	v.mu.Unlock()
	v.changes.Notify()
}

// Update replaces the value using fn.
// fn runs outside the lock; Update is not atomic across goroutines.
func (v *Var[T]) Update(fn func(T) T) {
	if v == nil || fn == nil {
		return
	}
	v.Set(fn(v.Get()))
}

// Subscribe registers a listener for change notifications.
func (v *Var[T]) Subscribe(fn func()) func() {
	if v == nil {
		return func() {}
	}
	return v.changes.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (v *Var[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if v == nil {
		return func() {}
	}
	return v.changes.SubscribeWithScheduler(scheduler, fn)
}

// Static is an immutable read-only value. It never notifies.
type Static[T any] struct {
	value T
}

// NewStatic wraps value as a read-only observable that never changes.
func NewStatic[T any](value T) Static[T] {
	return Static[T]{value: value}
}

// Get returns the wrapped value.
func (s Static[T]) Get() T {
	return s.value
}

// Subscribe is a no-op; a Static never changes.
func (s Static[T]) Subscribe(fn func()) func() {
	return func() {}
}

// SubscribeWithScheduler is a no-op; a Static never changes.
func (s Static[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	return func() {}
}
