package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/geom"
	"github.com/fuelrun/jerrycan/internal/input"
	"github.com/fuelrun/jerrycan/internal/world"
)

// ControlSystem turns the player, runs the weapon and applies the motion
// model. Phase 1 (Control).
//
// Order inside the tick: rotation, then weapon (recoil lands in the velocity
// before the speed is measured), then thrust, clamp and drag.
type ControlSystem struct {
	world *world.State
}

func NewControlSystem(ws *world.State) *ControlSystem {
	return &ControlSystem{world: ws}
}

func (s *ControlSystem) Phase() coresys.Phase { return coresys.PhaseControl }

func (s *ControlSystem) Update(dt time.Duration) {
	ws := s.world
	p, ok := ws.Player()
	if !ok {
		return
	}
	in := ws.Input
	t := ws.Tuning

	p.Transform.Rotation = Rotate(p.Transform.Rotation, in, t.RotationSpeed, dt)
	rotation := p.Transform.Rotation
	dir := geom.FromAngle(rotation)

	if tickWeapon(p.Stats, in.Held(input.Fire), dt) {
		p.Velocity.V = p.Velocity.V.Add(dir.Scale(t.BoostAcceleration))
		ws.SpawnBullets(t.ShotBatch, *p.Transform, &rotation)
		event.Emit(ws.Bus, event.ShotFired{
			Player:    p.ID,
			Pos:       p.Transform.Pos,
			Rotation:  rotation,
			AmmoLeft:  p.Stats.Ammunition,
			BatchSize: t.ShotBatch,
		})
	}

	p.Velocity.V = NextVelocity(p.Velocity.V, dir, in.Held(input.Boost), t)
}
