// Package sheet provides the targeting seam between the stat engine and an
// external character layer: a named collection of stats plus effects, which
// pair a modifier with a strategy for locating the stat it applies to.
package sheet

import (
	"sync"

	"github.com/odvcencio/statful/stat"
)

// Sheet is an ordered, keyed collection of stats sharing a value type,
// typically one character's attribute block.
type Sheet[T any] struct {
	mu    sync.Mutex
	order []string
	stats map[string]*stat.Modifiable[T]
}

// New creates an empty sheet.
func New[T any]() *Sheet[T] {
	return &Sheet[T]{stats: make(map[string]*stat.Modifiable[T])}
}

// Put registers s under key. Re-registering a key replaces the stat but
// keeps its position.
func (sh *Sheet[T]) Put(key string, s *stat.Modifiable[T]) {
	if s == nil {
		panic("sheet: nil stat")
	}
	sh.mu.Lock()
	if _, ok := sh.stats[key]; !ok {
		sh.order = append(sh.order, key)
	}
	sh.stats[key] = s
	sh.mu.Unlock()
}

// Get returns the stat registered under key.
func (sh *Sheet[T]) Get(key string) (*stat.Modifiable[T], bool) {
	sh.mu.Lock()
	s, ok := sh.stats[key]
	sh.mu.Unlock()
	return s, ok
}

// At returns the stat at position i in registration order.
func (sh *Sheet[T]) At(i int) (*stat.Modifiable[T], bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if i < 0 || i >= len(sh.order) {
		return nil, false
	}
	return sh.stats[sh.order[i]], true
}

// Len returns the number of registered stats.
func (sh *Sheet[T]) Len() int {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return len(sh.order)
}

// Keys returns the registration-ordered keys.
func (sh *Sheet[T]) Keys() []string {
	sh.mu.Lock()
	keys := make([]string, len(sh.order))
	copy(keys, sh.order)
	sh.mu.Unlock()
	return keys
}

// Locator finds the stat an effect targets within a sheet.
type Locator[T any] func(*Sheet[T]) (*stat.Modifiable[T], bool)

// ByKey locates a stat by its registration key.
func ByKey[T any](key string) Locator[T] {
	return func(sh *Sheet[T]) (*stat.Modifiable[T], bool) {
		return sh.Get(key)
	}
}

// ByIndex locates a stat by registration position.
func ByIndex[T any](i int) Locator[T] {
	return func(sh *Sheet[T]) (*stat.Modifiable[T], bool) {
		return sh.At(i)
	}
}

// ByFunc wraps a custom lookup strategy.
func ByFunc[T any](fn func(*Sheet[T]) (*stat.Modifiable[T], bool)) Locator[T] {
	return fn
}
