package stat

import (
	"math"
	"testing"

	"github.com/odvcencio/statful/modifier"
	"github.com/odvcencio/statful/state"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestValue_FoldsInChainOrder(t *testing.T) {
	s := New(100.0)
	s.Modifiers().Add(modifier.Times(modifier.Lit(1.10)))
	if got := s.Value(); !approx(got, 110) {
		t.Fatalf("expected 110, got %v", got)
	}
	s.Modifiers().Add(modifier.Plus(modifier.Lit(5.0)))
	if got := s.Value(); !approx(got, 115) {
		t.Fatalf("expected 115, got %v", got)
	}
}

func TestValue_PriorityOrdersApplication(t *testing.T) {
	// (10 + 5) * 2 = 30 when the plus runs first; priority decides, not
	// insertion order.
	s := New(10)
	s.Modifiers().AddWithPriority(modifier.Times(modifier.Lit(2)), 1)
	s.Modifiers().AddWithPriority(modifier.Plus(modifier.Lit(5)), 0)
	if got := s.Value(); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestValue_EqualPriorityKeepsFIFO(t *testing.T) {
	s := New(10)
	plus := modifier.Plus(modifier.Lit(5))
	times := modifier.Times(modifier.Lit(2))
	unrelated := modifier.Plus(modifier.Lit(0))

	s.Modifiers().Add(plus)
	s.Modifiers().Add(unrelated)
	s.Modifiers().Add(times)
	if got := s.Value(); got != 30 {
		t.Fatalf("expected (10+5)*2 = 30, got %d", got)
	}

	// Churning an unrelated entry must not disturb the tie-break.
	if !s.Modifiers().Remove(unrelated) {
		t.Fatal("expected unrelated modifier to be removed")
	}
	s.Modifiers().Add(unrelated)
	if got := s.Value(); got != 30 {
		t.Fatalf("expected order preserved after churn, got %d", got)
	}
}

func TestValue_DisableSkipsButKeepsSlot(t *testing.T) {
	s := New(10)
	plus := modifier.Plus(modifier.Lit(5))
	times := modifier.Times(modifier.Lit(2))
	s.Modifiers().Add(plus)
	s.Modifiers().Add(times)

	if got := s.Value(); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	plus.SetEnabled(false)
	if got := s.Value(); got != 20 {
		t.Fatalf("expected 20 with plus disabled, got %d", got)
	}
	plus.SetEnabled(true)
	if got := s.Value(); got != 30 {
		t.Fatalf("expected re-enable to restore the exact fold, got %d", got)
	}
}

func TestValue_MemoizedUntilInvalidation(t *testing.T) {
	s := New(1)
	folds := 0
	s.Modifiers().Add(modifier.Func(func(v int) int {
		folds++
		return v + 1
	}))

	for i := 0; i < 5; i++ {
		if got := s.Value(); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	}
	if folds != 1 {
		t.Fatalf("expected exactly one recompute across repeated reads, got %d", folds)
	}

	s.Set(10)
	s.Value()
	s.Value()
	if folds != 2 {
		t.Fatalf("expected one recompute after invalidation, got %d", folds)
	}
}

func TestAdd_FiresExactlyOneNotification(t *testing.T) {
	s := New(10)
	calls := 0
	s.Subscribe(func() { calls++ })

	operand := state.NewVar(5)
	s.Modifiers().Add(modifier.Plus(modifier.From[int](operand), modifier.WithName("buff")))
	if calls != 1 {
		t.Fatalf("expected exactly one notification on add, got %d", calls)
	}
}

func TestRemove_AbsentModifierIsSilent(t *testing.T) {
	s := New(10)
	calls := 0
	s.Subscribe(func() { calls++ })

	if s.Modifiers().Remove(modifier.Plus(modifier.Lit(1))) {
		t.Fatal("expected remove of absent modifier to report false")
	}
	if calls != 0 {
		t.Fatalf("expected no notification, got %d", calls)
	}
}

func TestDuplicateInstance_AppliesTwice(t *testing.T) {
	s := New(10)
	plus := modifier.Plus(modifier.Lit(5))
	s.Modifiers().Add(plus)
	s.Modifiers().Add(plus)

	if got := s.Modifiers().Len(); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	if got := s.Value(); got != 20 {
		t.Fatalf("expected both entries to apply, got %d", got)
	}

	if !s.Modifiers().Remove(plus) {
		t.Fatal("expected first entry removed")
	}
	if got := s.Value(); got != 15 {
		t.Fatalf("expected one entry left, got %d", got)
	}
	if !s.Modifiers().Contains(plus) {
		t.Fatal("expected second entry still present")
	}
}

func TestOperandChange_InvalidatesBeforeRecompute(t *testing.T) {
	bonus := state.NewVar(5)
	s := New(10)
	s.Modifiers().Add(modifier.Plus(modifier.From[int](bonus)))

	if got := s.Value(); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}

	// Reading inside the handler must observe the refolded value, not the
	// stale cache.
	var seen int
	s.Subscribe(func() { seen = s.Value() })

	bonus.Set(7)
	if seen != 17 {
		t.Fatalf("expected handler to read 17, got %d", seen)
	}
}

func TestChainMutationsInvalidate(t *testing.T) {
	s := New(10)
	plus := modifier.Plus(modifier.Lit(5))
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Modifiers().Add(plus)
	plus.SetEnabled(false)
	s.Modifiers().Remove(plus)
	s.Modifiers().Clear()
	if calls != 4 {
		t.Fatalf("expected 4 notifications (add, toggle, remove, clear), got %d", calls)
	}
	if got := s.Value(); got != 10 {
		t.Fatalf("expected bare base value, got %d", got)
	}
}

func TestRemove_DetachesMemberSubscription(t *testing.T) {
	s := New(10)
	plus := modifier.Plus(modifier.Lit(5))
	s.Modifiers().Add(plus)

	calls := 0
	s.Subscribe(func() { calls++ })
	s.Modifiers().Remove(plus)
	calls = 0

	plus.SetEnabled(false)
	if calls != 0 {
		t.Fatalf("expected removed modifier's toggles not to notify, got %d", calls)
	}
}

func TestStatAsOperand_PropagatesUpstream(t *testing.T) {
	// constitution 10, level 10; maxHealth gains round((con-10)/3)*level.
	con := New(10)
	level := 10
	conBonus := state.Map[int, int](con, func(c int) int {
		return int(math.Round(float64(c-10)/3)) * level
	})

	maxHealth := New(100)
	maxHealth.Modifiers().Add(modifier.Plus(modifier.From[int](conBonus), modifier.WithName("constitution")))

	if got := maxHealth.Value(); got != 100 {
		t.Fatalf("expected 100 before constitution changes, got %d", got)
	}

	calls := 0
	maxHealth.Subscribe(func() { calls++ })

	con.Set(15)
	if got := maxHealth.Value(); got != 120 {
		t.Fatalf("expected 120 after constitution 15, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one additional notification, got %d", calls)
	}
}

func TestCastModifierOnIntStat(t *testing.T) {
	s := New(10)
	frac := modifier.Plus(modifier.Lit(0.1))
	s.Modifiers().Add(modifier.IntFromFloat(frac))

	if got := s.Value(); got != 11 {
		t.Fatalf("expected ceiling cast to yield 11, got %d", got)
	}
}

func TestNewFrom_NilInitialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil initial")
		}
	}()
	NewFrom[int](nil)
}

func TestSet_ReadOnlyBasePanics(t *testing.T) {
	s := NewFrom[int](state.NewStatic(5))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for read-only base")
		}
	}()
	s.Set(6)
}

func TestRelease_DetachesFromBase(t *testing.T) {
	base := state.NewVar(10)
	s := NewFrom[int](base)
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Release()
	base.Set(20)
	if calls != 0 {
		t.Fatalf("expected no notifications after release, got %d", calls)
	}
}
