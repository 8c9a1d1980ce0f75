// Package modifier implements the enable-gated pure transforms folded over a
// stat's base value.
//
// A modifier is identified by reference: the same instance can be looked up
// or removed from a chain, and two modifiers built from identical parameters
// are distinct. Each instance also carries a ULID for diagnostics and for
// external effect bookkeeping.
package modifier

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/statful/state"
)

// Modifier is a named, enable-gated transform from T to T.
//
// When a modifier wraps an observable context, changes in the context are
// re-broadcast as changes of the modifier itself; that is how one stat used
// as another stat's operand propagates upstream. Call Close when discarding
// a modifier that wraps a borrowed context, or the context keeps a dangling
// subscription.
type Modifier[T any] struct {
	id      ulid.ULID
	name    string
	apply   func(T) T
	changes state.Notifier
	subs    state.Subscriptions

	mu      sync.Mutex
	enabled bool
}

// Option configures a modifier at construction.
type Option func(*options)

type options struct {
	name     string
	contexts []state.Subscribable
}

// WithName attaches a diagnostic name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithContext subscribes the modifier to an additional observable; any
// change in it is treated as a change of the modifier.
func WithContext(src state.Subscribable) Option {
	return func(o *options) {
		if src != nil {
			o.contexts = append(o.contexts, src)
		}
	}
}

func newModifier[T any](apply func(T) T, source state.Subscribable, opts []Option) *Modifier[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	m := &Modifier[T]{
		id:      ulid.Make(),
		name:    o.name,
		apply:   apply,
		enabled: true,
	}
	if source != nil {
		m.subs.Subscribe(source, m.changes.Notify)
	}
	for _, ctx := range o.contexts {
		m.subs.Subscribe(ctx, m.changes.Notify)
	}
	return m
}

// Func creates a modifier from an arbitrary pure transform.
func Func[T any](fn func(T) T, opts ...Option) *Modifier[T] {
	if fn == nil {
		panic("modifier: nil transform")
	}
	return newModifier(fn, nil, opts)
}

// ID returns the modifier's diagnostic ULID.
func (m *Modifier[T]) ID() ulid.ULID {
	return m.id
}

// Name returns the diagnostic name, possibly empty.
func (m *Modifier[T]) Name() string {
	return m.name
}

// String returns the name, or the ULID when unnamed.
func (m *Modifier[T]) String() string {
	if m.name != "" {
		return m.name
	}
	return m.id.String()
}

// Enabled reports whether the modifier currently participates in folds.
func (m *Modifier[T]) Enabled() bool {
	m.mu.Lock()
	enabled := m.enabled
	m.mu.Unlock()
	return enabled
}

// SetEnabled toggles participation and notifies subscribers.
// A disabled modifier keeps its position in any chain holding it.
func (m *Modifier[T]) SetEnabled(enabled bool) {
	m.mu.Lock()
	m.enabled = enabled
	m.mu.Unlock()
	m.changes.Notify()
}

// Apply runs the transform. The enable gate is the chain's concern; Apply
// always transforms.
func (m *Modifier[T]) Apply(v T) T {
	return m.apply(v)
}

// Subscribe registers a listener for modifier changes: enable toggles and
// context changes.
func (m *Modifier[T]) Subscribe(fn func()) func() {
	if m == nil {
		return func() {}
	}
	return m.changes.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (m *Modifier[T]) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	if m == nil {
		return func() {}
	}
	return m.changes.SubscribeWithScheduler(scheduler, fn)
}

// Close releases the modifier's context subscriptions.
func (m *Modifier[T]) Close() {
	if m == nil {
		return
	}
	m.subs.Clear()
}
