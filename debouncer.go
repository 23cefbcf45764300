package debounce

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Debouncer provides debouncing functionality for a function taking arguments
// of type P. It combines configuration and state into a single struct with
// methods for arming the debounce, flushing it, and tearing the handle down.
//
// Unlike the function pair returned by New, a Debouncer guarantees delivery of
// the final pending call: Close flushes it synchronously with the most
// recently captured arguments instead of dropping it. The wrapped function and
// wait duration can also be swapped at any time with SetFunc and SetWait,
// without disturbing a pending invocation — a pending call always fires with
// the latest arguments and whichever function is current at fire time.
//
// The zero value is not usable; use NewDebouncer to create a Debouncer.
type Debouncer[P any] struct {
	mux    sync.Mutex
	wait   time.Duration
	fn     func(P)
	args   P
	dirty  bool
	closed bool
	timer  clock.Timer
}

// NewDebouncer creates a new Debouncer that invokes f with the arguments of
// the last Call once wait has elapsed since that Call, or synchronously at
// Close if the handle is closed first.
func NewDebouncer[P any](
	wait time.Duration,
	f func(P),
	opts ...Option,
) *Debouncer[P] {
	conf := newConfig(opts)

	d := &Debouncer[P]{
		wait: wait,
		fn:   f,
	}
	d.timer = stoppedTimer(conf.clock, d.callback)

	return d
}

// Call captures args as the latest arguments and arms the debounce. Any
// previously pending invocation is replaced rather than queued, and the
// wrapped function is scheduled to run after the wait duration unless Call
// happens again first. After Close, Call does nothing.
//
// This method is safe for concurrent use.
func (d *Debouncer[P]) Call(args P) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.closed {
		return
	}

	d.args = args
	d.dirty = true
	d.timer.Reset(d.wait)
}

// SetFunc replaces the wrapped function without re-arming the debounce. A
// pending invocation keeps its captured arguments and deadline, but is
// delivered to the new function.
//
// If f is nil, the wrapped function is not modified from its current value.
func (d *Debouncer[P]) SetFunc(f func(P)) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.closed || f == nil {
		return
	}

	d.fn = f
}

// SetWait replaces the wait duration used by subsequent calls to Call. A
// pending invocation keeps its current deadline.
func (d *Debouncer[P]) SetWait(wait time.Duration) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.closed {
		return
	}

	d.wait = wait
}

// Pending reports whether an invocation is currently pending.
func (d *Debouncer[P]) Pending() bool {
	d.mux.Lock()
	defer d.mux.Unlock()

	return d.dirty
}

// Flush invokes the wrapped function immediately and synchronously with the
// most recently captured arguments, if an invocation is pending. Otherwise it
// does nothing. The pending timer is disarmed, so the flushed invocation
// cannot be delivered a second time.
func (d *Debouncer[P]) Flush() {
	if f, args, ok := d.take(); ok {
		f(args)
	}
}

// Stop discards any pending invocation without invoking the wrapped function.
// The Debouncer remains usable, and Call will arm it again.
func (d *Debouncer[P]) Stop() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.dirty = false
	d.timer.Stop()
}

// Close tears the handle down. If an invocation is pending it is flushed
// synchronously with the most recently captured arguments, exactly once, even
// if the timer fires at the same moment. If nothing is pending, no invocation
// happens. Close is idempotent, and after it returns, Call, Flush, SetFunc and
// SetWait have no effect.
func (d *Debouncer[P]) Close() {
	d.mux.Lock()
	if d.closed {
		d.mux.Unlock()
		return
	}
	d.closed = true
	d.mux.Unlock()

	if f, args, ok := d.take(); ok {
		f(args)
	}
}

// callback is called when the timer expires. It must not stop or reset the
// timer, as fake clocks invoke it while holding their own lock.
func (d *Debouncer[P]) callback() {
	d.mux.Lock()

	if !d.dirty || d.fn == nil {
		d.mux.Unlock()
		return
	}

	f, args := d.fn, d.args
	d.dirty = false
	d.mux.Unlock()

	f(args)
}

// take claims the pending invocation, if any, returning the current function
// and the captured arguments. Claiming disarms the timer and clears the
// pending state, so the timer callback cannot deliver the same invocation
// again.
func (d *Debouncer[P]) take() (func(P), P, bool) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if !d.dirty || d.fn == nil {
		var zero P

		return nil, zero, false
	}

	f, args := d.fn, d.args
	d.dirty = false
	d.timer.Stop()

	return f, args, true
}
