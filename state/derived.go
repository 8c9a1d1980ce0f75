package state

import "sync"

// Mapped projects a source value through a pure function.
//
// Every Get re-evaluates fn against the source; there is no cache of its
// own. A change in the source re-fires on the projection. Call Stop to
// release the upstream subscription when the projection is discarded.
type Mapped[T, U any] struct {
	changes Notifier
	source  Readable[T]
	fn      func(T) U
	mu      sync.Mutex
	unsub   func()
}

// Map creates a read-only projection of source through fn.
func Map[T, U any](source Readable[T], fn func(T) U) *Mapped[T, U] {
	m := &Mapped[T, U]{source: source, fn: fn}
	if source != nil {
		m.unsub = source.Subscribe(m.changes.Notify)
	}
	return m
}

// Get recomputes the projection from the current source value.
func (m *Mapped[T, U]) Get() U {
	if m == nil || m.fn == nil {
		var zero U
		return zero
	}
	return m.fn(m.source.Get())
}

// Subscribe registers a listener for change notifications.
func (m *Mapped[T, U]) Subscribe(fn func()) func() {
	if m == nil {
		return func() {}
	}
	return m.changes.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (m *Mapped[T, U]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if m == nil {
		return func() {}
	}
	return m.changes.SubscribeWithScheduler(scheduler, fn)
}

// Stop releases the upstream subscription.
func (m *Mapped[T, U]) Stop() {
	if m == nil {
		return
	}
	m.mu.Lock()
	unsub := m.unsub
	m.unsub = nil
	m.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// Zipped combines two sources through a pure function.
// It re-fires when either source fires.
type Zipped[A, B, U any] struct {
	changes Notifier
	a       Readable[A]
	b       Readable[B]
	fn      func(A, B) U
	mu      sync.Mutex
	unsubs  []func()
}

// Zip creates a read-only combination of a and b through fn.
func Zip[A, B, U any](a Readable[A], b Readable[B], fn func(A, B) U) *Zipped[A, B, U] {
	z := &Zipped[A, B, U]{a: a, b: b, fn: fn}
	if a != nil {
		z.unsubs = append(z.unsubs, a.Subscribe(z.changes.Notify))
	}
	if b != nil {
		z.unsubs = append(z.unsubs, b.Subscribe(z.changes.Notify))
	}
	return z
}

// Get recomputes the combination from the current source values.
func (z *Zipped[A, B, U]) Get() U {
	if z == nil || z.fn == nil {
		var zero U
		return zero
	}
	return z.fn(z.a.Get(), z.b.Get())
}

// Subscribe registers a listener for change notifications.
func (z *Zipped[A, B, U]) Subscribe(fn func()) func() {
	if z == nil {
		return func() {}
	}
	return z.changes.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (z *Zipped[A, B, U]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if z == nil {
		return func() {}
	}
	return z.changes.SubscribeWithScheduler(scheduler, fn)
}

// Stop releases the upstream subscriptions.
func (z *Zipped[A, B, U]) Stop() {
	if z == nil {
		return
	}
	z.mu.Lock()
	unsubs := z.unsubs
	z.unsubs = nil
	z.mu.Unlock()
	for _, unsub := range unsubs {
		if unsub != nil {
			unsub()
		}
	}
}
