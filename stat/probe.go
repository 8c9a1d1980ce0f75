package stat

import (
	"github.com/odvcencio/statful/modifier"
	"github.com/odvcencio/statful/numeric"
)

// Step records one entry's before/after values in a fold replay.
type Step[T any] struct {
	Modifier *modifier.Modifier[T]
	Priority int
	Enabled  bool
	Before   T
	After    T
}

// Breakdown replays the fold and returns one step per chain entry, in chain
// order. Disabled entries appear with Before == After. Intended for UI
// display; correctness of Value never depends on it.
func (s *Modifiable[T]) Breakdown() []Step[T] {
	entries := s.chain.snapshot()
	steps := make([]Step[T], 0, len(entries))
	v := s.initial.Get()
	for _, e := range entries {
		step := Step[T]{
			Modifier: e.mod,
			Priority: e.priority,
			Enabled:  e.mod.Enabled(),
			Before:   v,
			After:    v,
		}
		if step.Enabled {
			step.After = e.mod.Apply(v)
			v = step.After
		}
		steps = append(steps, step)
	}
	return steps
}

// ContributionWith replays the fold and sums the net delta contributed by
// every entry holding target, using ops for the accumulation.
func (s *Modifiable[T]) ContributionWith(ops numeric.Ops[T], target *modifier.Modifier[T]) T {
	delta := ops.Zero
	v := s.initial.Get()
	for _, e := range s.chain.snapshot() {
		if !e.mod.Enabled() {
			continue
		}
		next := e.mod.Apply(v)
		if e.mod == target {
			delta = ops.Add(delta, ops.Sub(next, v))
		}
		v = next
	}
	return delta
}

// Contribution is ContributionWith for built-in numeric kinds.
func Contribution[T numeric.Number](s *Modifiable[T], target *modifier.Modifier[T]) T {
	return s.ContributionWith(numeric.Of[T](), target)
}
