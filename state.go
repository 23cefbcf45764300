package debounce

import (
	"sync"
	"time"
)

// State keeps a locally responsive value that is propagated to a slower
// external owner through a debounced setter. Set updates the local value
// immediately, so readers of Value see every edit as it happens, while the
// external setter only receives the value after the edits have gone quiet for
// the wait duration — or synchronously at Close, so the final edit is never
// lost.
//
// The external owner may also change the value out from under the pair, for
// example when a sibling resets a form field. The owner of a State reports
// every value it observes from the external side via Observe, and an observed
// change overwrites the local value. A pending propagation survives such a
// reconciliation by default and still fires with its captured arguments; see
// WithObserveCancel for the alternative.
//
// The zero value is not usable; use NewState to create a State.
type State[S comparable] struct {
	mux           sync.Mutex
	current       S
	lastSeen      S
	observeCancel bool
	propagate     *Debouncer[S]
}

// NewState creates a new State holding initial as both the local value and the
// last value observed from the external owner. Values passed to Set are
// propagated to setter with the same collapsing semantics as a Debouncer: only
// the last value of a burst is delivered, after wait of inactivity or at
// Close.
func NewState[S comparable](
	initial S,
	setter func(S),
	wait time.Duration,
	opts ...Option,
) *State[S] {
	conf := newConfig(opts)

	return &State[S]{
		current:       initial,
		lastSeen:      initial,
		observeCancel: conf.observeCancel,
		propagate:     NewDebouncer(wait, setter, opts...),
	}
}

// Value returns the current local value: the argument of the most recent Set,
// or the most recently observed external value, whichever came last.
func (s *State[S]) Value() S {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.current
}

// Set updates the local value to v immediately and arms a debounced call to
// the external setter with v. Repeated calls collapse, so the setter receives
// only the value of the last Set once the wait duration has elapsed.
func (s *State[S]) Set(v S) {
	s.mux.Lock()
	s.current = v
	s.mux.Unlock()

	s.propagate.Call(v)
}

// Observe reconciles the local value against the externally owned one. If
// external differs from the last observed external value, the local value is
// overwritten to match it. Set never updates the observation mirror; the
// mirror only tracks what was last observed as incoming.
//
// The owner should call Observe every time it sees the external value.
func (s *State[S]) Observe(external S) {
	s.mux.Lock()
	if external == s.lastSeen {
		s.mux.Unlock()
		return
	}

	s.lastSeen = external
	s.current = external
	cancel := s.observeCancel
	s.mux.Unlock()

	if cancel {
		s.propagate.Stop()
	}
}

// Pending reports whether a propagation to the external setter is pending.
func (s *State[S]) Pending() bool {
	return s.propagate.Pending()
}

// Flush invokes the external setter immediately with the pending value, if a
// propagation is pending.
func (s *State[S]) Flush() {
	s.propagate.Flush()
}

// Close tears the pair down, flushing any pending propagation synchronously to
// the external setter so the last local edit is not lost. Close is idempotent;
// after it returns, Set no longer arms propagations.
func (s *State[S]) Close() {
	s.propagate.Close()
}
