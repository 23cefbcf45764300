package debounce

import (
	"k8s.io/utils/clock"
)

// Option is a function that can be used to configure a debounced handle.
type Option func(*config)

type config struct {
	clock         clock.WithDelayedExecution
	observeCancel bool
}

func newConfig(opts []Option) *config {
	c := &config{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithClock returns an option that replaces the real clock used to schedule
// invocations. Tests can inject a fake clock and advance time manually to get
// deterministic timing.
//
// A nil clock is ignored.
func WithClock(c clock.WithDelayedExecution) Option {
	return func(conf *config) {
		if c != nil {
			conf.clock = c
		}
	}
}

// WithObserveCancel returns an option that makes State.Observe discard any
// pending propagation when it adopts an externally changed value.
//
// Without this option a pending propagation survives the reconciliation and
// still fires with the arguments captured before the external change, which
// means the external owner can receive a value older than the one it just
// published. WithObserveCancel trades that staleness for dropping the local
// edit entirely.
func WithObserveCancel() Option {
	return func(conf *config) {
		conf.observeCancel = true
	}
}
