package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
)

// PickupSystem lets the live player collect jerry cans in reach. What a can
// restores is up to the rules.
// Phase 3 (Resolve).
type PickupSystem struct {
	world *world.State
	rules Rules
}

func NewPickupSystem(ws *world.State, rules Rules) *PickupSystem {
	return &PickupSystem{world: ws, rules: rules}
}

func (s *PickupSystem) Phase() coresys.Phase { return coresys.PhaseResolve }

func (s *PickupSystem) Update(_ time.Duration) {
	ws := s.world
	p, ok := ws.Player()
	if !ok {
		return
	}
	ecs.Each2(ws.JerryCans, ws.Transforms, func(can ecs.EntityID, _ *component.JerryCan, tr *component.Transform) {
		if tr.Pos.Dist(p.Transform.Pos) >= ws.Tuning.PickupRadius {
			return
		}
		before := p.Stats.Ammunition
		after := s.rules.PickupAmmo(before, ws.Tuning.MaxAmmunition)
		if after > ws.Tuning.MaxAmmunition {
			after = ws.Tuning.MaxAmmunition
		}
		p.Stats.Ammunition = after
		ws.Despawn(can)
		event.Emit(ws.Bus, event.PickupCollected{
			Player:     p.ID,
			Pickup:     can,
			AmmoBefore: before,
			AmmoAfter:  after,
		})
	})
}
