package modifier

import (
	"time"

	"github.com/odvcencio/statful/state"
)

// After runs fn once after d and returns a cancel function.
//
// The timer fires on a runtime goroutine. The value graph is single-threaded,
// so callers that mutate it from the callback must pass a scheduler that
// marshals onto the owning goroutine (for example a state.Queue flushed by
// the game loop). A nil scheduler runs fn directly on the timer goroutine.
func After(d time.Duration, scheduler state.Scheduler, fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	timer := time.AfterFunc(d, func() {
		if scheduler == nil {
			fn()
			return
		}
		scheduler.Schedule(fn)
	})
	return func() { timer.Stop() }
}

// EnableAfter enables m once after d.
func EnableAfter[T any](m *Modifier[T], d time.Duration, scheduler state.Scheduler) (cancel func()) {
	return After(d, scheduler, func() { m.SetEnabled(true) })
}

// DisableAfter disables m once after d, the usual shape of a timed buff.
func DisableAfter[T any](m *Modifier[T], d time.Duration, scheduler state.Scheduler) (cancel func()) {
	return After(d, scheduler, func() { m.SetEnabled(false) })
}
