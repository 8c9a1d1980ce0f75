package modifier

import (
	"testing"
	"time"

	"github.com/odvcencio/statful/state"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDisableAfter(t *testing.T) {
	m := Plus(Lit(1))
	DisableAfter(m, time.Millisecond, nil)
	waitFor(t, func() bool { return !m.Enabled() })
}

func TestEnableAfter_WithQueueScheduler(t *testing.T) {
	m := Plus(Lit(1))
	m.SetEnabled(false)

	queue := state.NewQueue()
	EnableAfter(m, time.Millisecond, queue)

	// The timer only enqueues; the mutation happens on our flush.
	waitFor(t, func() bool { return queue.Flush() > 0 })
	if !m.Enabled() {
		t.Fatal("expected modifier enabled after flush")
	}
}

func TestAfter_Cancel(t *testing.T) {
	fired := false
	cancel := After(10*time.Millisecond, nil, func() { fired = true })
	cancel()
	time.Sleep(30 * time.Millisecond)
	if fired {
		t.Fatal("expected cancelled timer not to fire")
	}
}
