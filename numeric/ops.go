// Package numeric supplies generic arithmetic for the stat engine.
//
// Built-in numeric kinds bind their operators through the Number constraint
// at compile time, with no dispatch table on the hot path. The Ops table
// exists for value types outside the constraint, such as user-defined
// vectors, and is resolved through a process-wide registry.
package numeric

import (
	"fmt"
	"reflect"
	"sync"
)

// Number is the constraint covering the built-in numeric kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ops is an operator table for a value type T.
//
// Division by zero and overflow follow T's native semantics; the engine adds
// no special-casing on top.
type Ops[T any] struct {
	Add func(a, b T) T
	Sub func(a, b T) T
	Mul func(a, b T) T
	Div func(a, b T) T
	Neg func(a T) T
	Min func(a, b T) T
	Max func(a, b T) T

	Zero T
	One  T
}

// Of builds the operator table for a built-in numeric kind from its native
// operators.
func Of[T Number]() Ops[T] {
	return Ops[T]{
		Add: func(a, b T) T { return a + b },
		Sub: func(a, b T) T { return a - b },
		Mul: func(a, b T) T { return a * b },
		Div: func(a, b T) T { return a / b },
		Neg: func(a T) T { return -a },
		Min: func(a, b T) T {
			if b < a {
				return b
			}
			return a
		},
		Max: func(a, b T) T {
			if b > a {
				return b
			}
			return a
		},
		Zero: 0,
		One:  1,
	}
}

// Clamp bounds v to [lo, hi] using the table's ordering.
func (o Ops[T]) Clamp(v, lo, hi T) T {
	return o.Min(o.Max(v, lo), hi)
}

var (
	registryMu sync.Mutex
	registry   = make(map[reflect.Type]any)
)

// Register installs the operator table for T, replacing any previous one.
func Register[T any](ops Ops[T]) {
	registryMu.Lock()
	registry[reflect.TypeOf((*T)(nil)).Elem()] = ops
	registryMu.Unlock()
}

// For returns the registered operator table for T.
// Requesting a type that was never registered is a configuration error and
// panics at first use.
func For[T any]() Ops[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	registryMu.Lock()
	v, ok := registry[t]
	registryMu.Unlock()
	if !ok {
		panic(fmt.Sprintf("numeric: no operator table registered for %v", t))
	}
	return v.(Ops[T])
}

// Registered reports whether an operator table exists for T.
func Registered[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	registryMu.Lock()
	_, ok := registry[t]
	registryMu.Unlock()
	return ok
}

func init() {
	Register(Of[int]())
	Register(Of[int8]())
	Register(Of[int16]())
	Register(Of[int32]())
	Register(Of[int64]())
	Register(Of[uint]())
	Register(Of[uint8]())
	Register(Of[uint16]())
	Register(Of[uint32]())
	Register(Of[uint64]())
	Register(Of[float32]())
	Register(Of[float64]())
}
