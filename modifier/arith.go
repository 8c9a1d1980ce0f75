package modifier

import (
	"github.com/odvcencio/statful/numeric"
	"github.com/odvcencio/statful/state"
)

// Operand is the right-hand side of an arithmetic modifier: either a literal
// or a live observable whose changes re-fire on the modifier.
type Operand[T any] struct {
	get    func() T
	source state.Subscribable
}

// Lit wraps a constant operand.
func Lit[T any](v T) Operand[T] {
	return Operand[T]{get: func() T { return v }}
}

// From wraps an observable operand. The modifier re-reads it on every fold
// and re-broadcasts its changes.
func From[T any](src state.Readable[T]) Operand[T] {
	if src == nil {
		panic("modifier: nil operand source")
	}
	return Operand[T]{get: src.Get, source: src}
}

func (o Operand[T]) getter() func() T {
	if o.get == nil {
		panic("modifier: zero Operand; use Lit or From")
	}
	return o.get
}

// Plus adds the operand to the incoming value.
// The built-in factories bind arithmetic through the Number constraint, so
// no dispatch table sits on the fold path.
func Plus[T numeric.Number](operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return v + get() }, operand.source, opts)
}

// Minus subtracts the operand from the incoming value.
func Minus[T numeric.Number](operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return v - get() }, operand.source, opts)
}

// Times multiplies the incoming value by the operand.
func Times[T numeric.Number](operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return v * get() }, operand.source, opts)
}

// Divide divides the incoming value by the operand. Division by zero follows
// T's native semantics.
func Divide[T numeric.Number](operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return v / get() }, operand.source, opts)
}

// Substitute discards the incoming value and yields the operand.
func Substitute[T any](operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(T) T { return get() }, operand.source, opts)
}

// PlusWith is Plus for types outside the Number constraint, using a
// registered or caller-supplied operator table.
func PlusWith[T any](ops numeric.Ops[T], operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return ops.Add(v, get()) }, operand.source, opts)
}

// MinusWith is Minus over an operator table.
func MinusWith[T any](ops numeric.Ops[T], operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return ops.Sub(v, get()) }, operand.source, opts)
}

// TimesWith is Times over an operator table.
func TimesWith[T any](ops numeric.Ops[T], operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return ops.Mul(v, get()) }, operand.source, opts)
}

// DivideWith is Divide over an operator table.
func DivideWith[T any](ops numeric.Ops[T], operand Operand[T], opts ...Option) *Modifier[T] {
	get := operand.getter()
	return newModifier(func(v T) T { return ops.Div(v, get()) }, operand.source, opts)
}
