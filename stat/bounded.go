package stat

import (
	"sync"

	"github.com/odvcencio/statful/numeric"
	"github.com/odvcencio/statful/state"
)

// Bounded is a read-write value clamped to observable [min, max] bounds at
// write time.
//
// The clamp is sticky: the stored value is clamped, not virtual. Writing
// -20 against a lower bound of 0 stores 0, so a following +10 yields 10
// rather than -10. When either bound changes, the stored value is reclamped
// in place as if rewritten.
type Bounded[T any] struct {
	changes state.Notifier
	ops     numeric.Ops[T]
	min     state.Readable[T]
	max     state.Readable[T]
	subs    state.Subscriptions

	mu    sync.Mutex
	value T
}

// NewBounded creates a bounded value for a built-in numeric kind.
func NewBounded[T numeric.Number](initial T, min, max state.Readable[T]) *Bounded[T] {
	return NewBoundedWith(numeric.Of[T](), initial, min, max)
}

// NewBoundedWith creates a bounded value using an operator table, for types
// outside the Number constraint. Nil bounds are a misuse error and panic.
func NewBoundedWith[T any](ops numeric.Ops[T], initial T, min, max state.Readable[T]) *Bounded[T] {
	if min == nil || max == nil {
		panic("stat: nil bound")
	}
	b := &Bounded[T]{ops: ops, min: min, max: max}
	b.value = ops.Clamp(initial, min.Get(), max.Get())
	b.subs.Subscribe(min, b.reclamp)
	b.subs.Subscribe(max, b.reclamp)
	return b
}

// Get returns the stored (clamped) value.
func (b *Bounded[T]) Get() T {
	b.mu.Lock()
	v := b.value
	b.mu.Unlock()
	return v
}

// Set clamps v against the current bounds, stores it, and notifies
// unconditionally.
func (b *Bounded[T]) Set(v T) {
	lo, hi := b.min.Get(), b.max.Get()
	b.mu.Lock()
	b.value = b.ops.Clamp(v, lo, hi)
	b.mu.Unlock()
	b.changes.Notify()
}

// Update replaces the stored value using fn, clamping the result.
func (b *Bounded[T]) Update(fn func(T) T) {
	if fn == nil {
		return
	}
	b.Set(fn(b.Get()))
}

// Bounds returns the current bound values.
func (b *Bounded[T]) Bounds() (lo, hi T) {
	return b.min.Get(), b.max.Get()
}

// Subscribe registers a listener for change notifications.
func (b *Bounded[T]) Subscribe(fn func()) func() {
	if b == nil {
		return func() {}
	}
	return b.changes.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (b *Bounded[T]) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	if b == nil {
		return func() {}
	}
	return b.changes.SubscribeWithScheduler(scheduler, fn)
}

// Release detaches the value from its bound observables.
func (b *Bounded[T]) Release() {
	b.subs.Clear()
}

func (b *Bounded[T]) reclamp() {
	b.Set(b.Get())
}
