package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
)

// advanceTimer adds dt and reports how many times the timer completed.
// One-shot timers saturate at Duration and report at most one completion,
// on the tick they first finish. Repeating timers carry the overshoot.
func advanceTimer(t *component.Timer, dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	if !t.Repeat {
		was := timerFinished(t)
		t.Elapsed += dt
		if t.Elapsed > t.Duration {
			t.Elapsed = t.Duration
		}
		if !was && timerFinished(t) {
			return 1
		}
		return 0
	}
	if t.Duration <= 0 {
		// degenerate interval: one completion per tick rather than a spin
		return 1
	}
	t.Elapsed += dt
	n := int(t.Elapsed / t.Duration)
	t.Elapsed -= time.Duration(n) * t.Duration
	return n
}

// timerFinished reports whether a one-shot timer has run its course.
func timerFinished(t *component.Timer) bool {
	return t.Elapsed >= t.Duration
}

func resetTimer(t *component.Timer) {
	t.Elapsed = 0
}
