package sheet

import (
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/statful/modifier"
)

// Effect pairs one modifier with the locator naming its target slot, so the
// same modifier+target can be applied to and revoked from whichever sheet a
// character layer hands it.
type Effect[T any] struct {
	id       ulid.ULID
	mod      *modifier.Modifier[T]
	locator  Locator[T]
	priority int
}

// NewEffect creates an effect applying mod at priority to the stat found by
// locator.
func NewEffect[T any](mod *modifier.Modifier[T], locator Locator[T], priority int) *Effect[T] {
	if mod == nil {
		panic("sheet: nil modifier")
	}
	if locator == nil {
		panic("sheet: nil locator")
	}
	return &Effect[T]{
		id:       ulid.Make(),
		mod:      mod,
		locator:  locator,
		priority: priority,
	}
}

// ID returns the effect's ULID.
func (e *Effect[T]) ID() ulid.ULID {
	return e.id
}

// Modifier returns the wrapped modifier.
func (e *Effect[T]) Modifier() *modifier.Modifier[T] {
	return e.mod
}

// Apply attaches the modifier to the located stat. It reports false when the
// locator finds no target.
func (e *Effect[T]) Apply(sh *Sheet[T]) bool {
	target, ok := e.locator(sh)
	if !ok {
		return false
	}
	target.Modifiers().AddWithPriority(e.mod, e.priority)
	return true
}

// Revoke removes the modifier from the located stat. It reports false when
// the locator finds no target or the modifier was not attached.
func (e *Effect[T]) Revoke(sh *Sheet[T]) bool {
	target, ok := e.locator(sh)
	if !ok {
		return false
	}
	return target.Modifiers().Remove(e.mod)
}
