package debounce

import (
	"time"

	"k8s.io/utils/clock"
)

const longDelay = 24 * time.Hour

// stoppedTimer returns a stopped clock.Timer created with AfterFunc. The given
// function is not called until the timer is restarted with Reset.
func stoppedTimer(c clock.WithDelayedExecution, f func()) clock.Timer {
	t := c.AfterFunc(longDelay, f)
	t.Stop()

	return t
}
