// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Debouncing can be useful in scenarios where function calls may be triggered
// rapidly, such as in response to user input, but the underlying operation is
// expensive and only needs to be performed once per batch of calls. The
// debounced wrappers in this package carry typed arguments, and only the
// arguments of the last call are delivered.
//
// Two flavors of wrapper are provided. New returns a plain debounced function
// whose pending call is simply dropped when the owner cancels it. Debouncer is
// a handle that additionally guarantees delivery: closing it flushes the last
// pending call synchronously instead of losing it, which is what input-style
// callers want when they go away mid-edit. State builds on Debouncer to keep a
// locally responsive value that is propagated to a slower external owner.
package debounce

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// New returns a debounced function that delays invoking f until after wait
// time has elapsed since the last time the debounced function was invoked.
// Every call replaces the captured arguments, so f receives the arguments of
// the last call only.
//
// The returned cancel function discards any pending invocation of f without
// calling it. Call it when the owner of the handle goes away and a trailing
// call should be dropped rather than delivered; if that final call must not be
// lost, use a Debouncer and its Close method instead. cancel is not required
// to be called, and calling it does not prevent further use of the debounced
// function.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
//
// The debounced function does not wait for f to complete, so f needs to be
// thread-safe as it may be invoked again before the previous invocation
// completes.
func New[P any](
	wait time.Duration,
	f func(P),
	opts ...Option,
) (debounced func(P), cancel func()) {
	conf := newConfig(opts)

	var mux sync.Mutex
	var args P
	var timer clock.Timer

	timer = stoppedTimer(conf.clock, func() {
		mux.Lock()
		a := args
		mux.Unlock()

		f(a)
	})

	debounced = func(p P) {
		mux.Lock()
		defer mux.Unlock()

		args = p
		timer.Reset(wait)
	}

	cancel = func() {
		mux.Lock()
		defer mux.Unlock()

		timer.Stop()
	}

	return debounced, cancel
}
