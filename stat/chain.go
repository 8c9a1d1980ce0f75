// Package stat implements the fold engine: modifiable values that derive a
// stat by folding a stably ordered chain of modifiers over a base value,
// with lazy recomputation and change propagation.
package stat

import (
	"sort"
	"sync"

	"github.com/odvcencio/statful/modifier"
)

type entry[T any] struct {
	mod      *modifier.Modifier[T]
	priority int
	seq      uint64
	unsub    func()
}

// Chain is the ordered multiset of modifiers attached to one stat.
//
// Iteration order is non-decreasing by (priority, insertion sequence). The
// sequence number is assigned per Add and never reused, so entries with
// equal priority keep FIFO order no matter what is added or removed around
// them. The same modifier instance may be added twice; each Add creates an
// independent entry.
type Chain[T any] struct {
	mu      sync.Mutex
	entries []entry[T]
	nextSeq uint64
	changed func()
}

func newChain[T any](changed func()) *Chain[T] {
	return &Chain[T]{changed: changed}
}

// Add appends m at priority 0.
func (c *Chain[T]) Add(m *modifier.Modifier[T]) {
	c.AddWithPriority(m, 0)
}

// AddWithPriority inserts m at its ordering slot and fires exactly one
// change on the owning stat. Lower priorities apply first.
func (c *Chain[T]) AddWithPriority(m *modifier.Modifier[T], priority int) {
	if m == nil {
		panic("stat: nil modifier")
	}
	c.mu.Lock()
	e := entry[T]{
		mod:      m,
		priority: priority,
		seq:      c.nextSeq,
		unsub:    m.Subscribe(c.changed),
	}
	c.nextSeq++
	i := sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].priority > priority
	})
	c.entries = append(c.entries, entry[T]{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = e
	c.mu.Unlock()
	c.changed()
}

// Remove removes the earliest entry holding m, matching by reference.
// It reports whether an entry was removed; removing an absent modifier fires
// no change.
func (c *Chain[T]) Remove(m *modifier.Modifier[T]) bool {
	c.mu.Lock()
	for i := range c.entries {
		if c.entries[i].mod == m {
			unsub := c.entries[i].unsub
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.mu.Unlock()
			if unsub != nil {
				unsub()
			}
			c.changed()
			return true
		}
	}
	c.mu.Unlock()
	return false
}

// Clear removes every entry and fires one change.
func (c *Chain[T]) Clear() {
	c.mu.Lock()
	entries := c.entries
	c.entries = nil
	c.mu.Unlock()
	for i := range entries {
		if entries[i].unsub != nil {
			entries[i].unsub()
		}
	}
	c.changed()
}

// Contains reports whether any entry holds m, matching by reference.
func (c *Chain[T]) Contains(m *modifier.Modifier[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].mod == m {
			return true
		}
	}
	return false
}

// Len returns the number of entries, counting duplicates.
func (c *Chain[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Each iterates entries in chain order until fn returns false.
func (c *Chain[T]) Each(fn func(m *modifier.Modifier[T], priority int) bool) {
	for _, e := range c.snapshot() {
		if !fn(e.mod, e.priority) {
			return
		}
	}
}

func (c *Chain[T]) snapshot() []entry[T] {
	c.mu.Lock()
	entries := make([]entry[T], len(c.entries))
	copy(entries, c.entries)
	c.mu.Unlock()
	return entries
}
