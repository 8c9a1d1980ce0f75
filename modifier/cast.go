package modifier

import "math"

// Cast adapts a Modifier[S] to operate in T-space: the incoming T is
// converted to S, transformed, and converted back. Precision loss is the
// caller's responsibility.
//
// The adapter subscribes to the inner modifier, so enable toggles and
// context changes on the inner modifier propagate. When the inner modifier
// is disabled the adapter passes values through unchanged.
func Cast[T, S any](inner *Modifier[S], to func(T) S, from func(S) T, opts ...Option) *Modifier[T] {
	if inner == nil {
		panic("modifier: nil inner modifier")
	}
	if to == nil || from == nil {
		panic("modifier: nil conversion")
	}
	if len(opts) == 0 && inner.name != "" {
		opts = []Option{WithName(inner.name)}
	}
	return newModifier(func(v T) T {
		if !inner.Enabled() {
			return v
		}
		return from(inner.Apply(to(v)))
	}, inner, opts)
}

// IntFromFloat adapts a float64 modifier onto an integer stat.
//
// The conversion back to int takes the ceiling, so any fractional
// contribution counts as a whole point: a +0.1 contribution on 10 yields 11.
func IntFromFloat(inner *Modifier[float64], opts ...Option) *Modifier[int] {
	return Cast(inner,
		func(v int) float64 { return float64(v) },
		func(v float64) int { return int(math.Ceil(v)) },
		opts...)
}
