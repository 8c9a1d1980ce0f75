package stat

import (
	"sync"

	"github.com/odvcencio/statful/state"
)

// Modifiable derives a stat by left-folding its modifier chain over a base
// observable value.
//
// The derived value is cached and recomputed at most once per invalidation:
// a change of the base value, of any chain member (enable toggle, operand
// change), or of the chain itself marks the cache dirty and notifies
// subscribers before any recompute happens. The next Value call folds once
// and caches until the next change.
//
// A Modifiable implements state.Readable, so it can feed another stat's
// modifier as a live operand. Cyclic dependencies between stats are
// unsupported and recurse until the stack limit.
type Modifiable[T any] struct {
	changes state.Notifier
	initial state.Readable[T]
	base    *state.Var[T]
	chain   *Chain[T]
	subs    state.Subscriptions

	mu     sync.Mutex
	cached T
	dirty  bool
}

// New creates a stat from a literal base value. The base stays writable
// through Set.
func New[T any](initial T) *Modifiable[T] {
	return NewFrom[T](state.NewVar(initial))
}

// NewFrom creates a stat whose base is an existing observable.
// A nil initial value is a misuse error and panics.
func NewFrom[T any](initial state.Readable[T]) *Modifiable[T] {
	if initial == nil {
		panic("stat: nil initial value")
	}
	s := &Modifiable[T]{initial: initial, dirty: true}
	if v, ok := initial.(*state.Var[T]); ok {
		s.base = v
	}
	s.chain = newChain[T](s.invalidate)
	s.subs.Subscribe(initial, s.invalidate)
	return s
}

// Value returns the folded stat, recomputing only when dirty.
func (s *Modifiable[T]) Value() T {
	s.mu.Lock()
	if s.dirty {
		s.cached = s.fold()
		s.dirty = false
	}
	v := s.cached
	s.mu.Unlock()
	return v
}

// Get is Value; it satisfies state.Readable.
func (s *Modifiable[T]) Get() T {
	return s.Value()
}

// Set writes the base value. It panics when the stat was built from a
// read-only source.
func (s *Modifiable[T]) Set(v T) {
	if s.base == nil {
		panic("stat: base value is not writable")
	}
	s.base.Set(v)
}

// Initial returns the base observable the fold starts from.
func (s *Modifiable[T]) Initial() state.Readable[T] {
	return s.initial
}

// Modifiers returns the stat's chain.
func (s *Modifiable[T]) Modifiers() *Chain[T] {
	return s.chain
}

// Subscribe registers a listener fired on any upstream change. The listener
// may read Value synchronously; it gets the freshly folded result.
func (s *Modifiable[T]) Subscribe(fn func()) func() {
	if s == nil {
		return func() {}
	}
	return s.changes.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (s *Modifiable[T]) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	if s == nil {
		return func() {}
	}
	return s.changes.SubscribeWithScheduler(scheduler, fn)
}

// Release detaches the stat from its base observable. Chains wrapping
// borrowed observables must be released by their owner.
func (s *Modifiable[T]) Release() {
	s.subs.Clear()
}

// invalidate marks the cache dirty, then notifies. The stale cached value is
// never observable through Value because the getter refolds on demand.
func (s *Modifiable[T]) invalidate() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
	s.changes.Notify()
}

// fold is the single authoritative algorithm: left-to-right application of
// every enabled modifier in chain order. Disabled entries cost a branch but
// keep their ordering slot.
func (s *Modifiable[T]) fold() T {
	v := s.initial.Get()
	for _, e := range s.chain.snapshot() {
		if e.mod.Enabled() {
			v = e.mod.Apply(v)
		}
	}
	return v
}
