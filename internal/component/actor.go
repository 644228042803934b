package component

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/geom"
)

// Transform is an entity's pose. Z orders drawing only; every collision
// test in the simulation is planar and ignores it.
// Pure data, zero methods. All mutations happen in systems.
type Transform struct {
	Pos      geom.Vec2
	Z        float64
	Rotation float64 // radians, counter-clockwise from +X
}

// Velocity in world units per second.
type Velocity struct {
	V geom.Vec2
}

// Timer counts elapsed time up to Duration. A one-shot timer stays finished
// until reset; a repeating timer wraps and reports each completion.
type Timer struct {
	Elapsed  time.Duration
	Duration time.Duration
	Repeat   bool
}
