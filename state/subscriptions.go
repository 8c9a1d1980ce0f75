package state

import "sync"

// Subscriptions tracks unsubscribe callbacks so an owner can release every
// listener it attached to borrowed observables in one call. Owners that wrap
// long-lived shared values must Clear on disposal or the shared value keeps
// a dangling subscription.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Subscribe registers a listener on sub and tracks the unsubscribe.
func (s *Subscriptions) Subscribe(sub Subscribable, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	s.Add(sub.Subscribe(fn))
}

// Clear releases all tracked subscriptions.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		if unsub != nil {
			unsub()
		}
	}
}
