package modifier

import (
	"testing"

	"github.com/odvcencio/statful/numeric"
	"github.com/odvcencio/statful/state"
)

func TestArithmeticFactories(t *testing.T) {
	cases := []struct {
		name string
		mod  *Modifier[int]
		in   int
		want int
	}{
		{"plus", Plus(Lit(5)), 10, 15},
		{"minus", Minus(Lit(3)), 10, 7},
		{"times", Times(Lit(4)), 10, 40},
		{"divide", Divide(Lit(2)), 10, 5},
		{"substitute", Substitute(Lit(99)), 10, 99},
	}
	for _, tc := range cases {
		if got := tc.mod.Apply(tc.in); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestTableFactories(t *testing.T) {
	ops := numeric.Of[float64]()
	m := TimesWith(ops, Lit(1.5))
	if got := m.Apply(10); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestFunc(t *testing.T) {
	square := Func(func(v int) int { return v * v }, WithName("square"))
	if got := square.Apply(7); got != 49 {
		t.Fatalf("expected 49, got %d", got)
	}
	if square.Name() != "square" {
		t.Fatalf("expected name square, got %q", square.Name())
	}
	if square.String() != "square" {
		t.Fatalf("expected String to use the name, got %q", square.String())
	}
}

func TestFunc_NilTransformPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil transform")
		}
	}()
	Func[int](nil)
}

func TestSetEnabled_Notifies(t *testing.T) {
	m := Plus(Lit(1))
	if !m.Enabled() {
		t.Fatal("expected modifiers to start enabled")
	}

	calls := 0
	m.Subscribe(func() { calls++ })

	m.SetEnabled(false)
	if m.Enabled() {
		t.Fatal("expected modifier to be disabled")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call after disable, got %d", calls)
	}
	m.SetEnabled(true)
	if calls != 2 {
		t.Fatalf("expected 2 calls after enable, got %d", calls)
	}
}

func TestObservableOperand_RebroadcastsChanges(t *testing.T) {
	bonus := state.NewVar(5)
	m := Plus(From[int](bonus), WithName("bonus"))

	calls := 0
	m.Subscribe(func() { calls++ })

	if got := m.Apply(10); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
	bonus.Set(7)
	if calls != 1 {
		t.Fatalf("expected operand change to re-fire on modifier, got %d", calls)
	}
	if got := m.Apply(10); got != 17 {
		t.Fatalf("expected 17 after operand change, got %d", got)
	}
}

func TestClose_ReleasesContextSubscription(t *testing.T) {
	bonus := state.NewVar(5)
	m := Plus(From[int](bonus))

	calls := 0
	m.Subscribe(func() { calls++ })

	m.Close()
	bonus.Set(6)
	if calls != 0 {
		t.Fatalf("expected no calls after Close, got %d", calls)
	}
}

func TestWithContext_ExtraObservable(t *testing.T) {
	aura := state.NewVar("weak")
	m := Func(func(v int) int { return v }, WithContext(aura))

	calls := 0
	m.Subscribe(func() { calls++ })

	aura.Set("strong")
	if calls != 1 {
		t.Fatalf("expected context change to fire on modifier, got %d", calls)
	}
}

func TestIdentity_DistinctInstances(t *testing.T) {
	a := Plus(Lit(1))
	b := Plus(Lit(1))
	if a == b {
		t.Fatal("expected distinct instances")
	}
	if a.ID() == b.ID() {
		t.Fatal("expected distinct ids")
	}
}
