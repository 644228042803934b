package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/geom"
	"github.com/fuelrun/jerrycan/internal/input"
)

// NextVelocity advances a thrusting actor's velocity by one tick.
//
// The clamp ceiling is the speed measured before passive thrust is added:
// passive thrust can only steer the velocity toward dir, never speed it up.
// Boost (and weapon recoil, applied by the caller beforehand) is what raises
// speed, up to MaxSpeed. Drag is applied last, so the result is always
// strictly below MaxSpeed.
func NextVelocity(v, dir geom.Vec2, boost bool, t config.Tuning) geom.Vec2 {
	if boost {
		v = v.Add(dir.Scale(t.BoostAcceleration))
	}
	speed := v.Len()
	v = v.Add(dir.Scale(t.PassiveAcceleration))
	if speed > t.MaxSpeed {
		speed = t.MaxSpeed
	}
	v = v.WithLen(speed)
	return v.Scale(t.Drag)
}

// Rotate turns an orientation by the held turn inputs. Angular rate is
// instantaneous: no angular velocity is carried between ticks.
func Rotate(rotation float64, in input.Snapshot, rate float64, dt time.Duration) float64 {
	step := rate * dt.Seconds()
	if in.Held(input.TurnLeft) {
		rotation += step
	}
	if in.Held(input.TurnRight) {
		rotation -= step
	}
	return geom.NormalizeAngle(rotation)
}

// Integrate moves pos by v over dt.
func Integrate(pos, v geom.Vec2, dt time.Duration) geom.Vec2 {
	return pos.Add(v.Scale(dt.Seconds()))
}
