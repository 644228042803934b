package world

import (
	"math"
	"time"
)

// RandRange returns a uniform value in [lo, hi). An empty or inverted range
// yields lo instead of panicking.
func (s *State) RandRange(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	return lo + s.Rng.Float64()*(hi-lo)
}

// RandDuration returns a uniform duration in [lo, hi). Empty range yields lo.
func (s *State) RandDuration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.Rng.Int63n(int64(hi-lo)))
}

// RandAngle returns an angle in [-2Pi, 2Pi). The doubled span is harmless
// (directions repeat) and keeps burst spreads matching the stock feel.
func (s *State) RandAngle() float64 {
	return s.RandRange(-2*math.Pi, 2*math.Pi)
}
