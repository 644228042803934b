package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
)

// DeathSystem kills the player on contact with a hostile. The first hostile
// inside HitRadius ends the check: the player is removed, a burst goes off
// where it stood and one jerry can is dropped there.
// Phase 3 (Resolve), after pickups so a fresh can is not collected by its owner.
type DeathSystem struct {
	world *world.State
}

func NewDeathSystem(ws *world.State) *DeathSystem {
	return &DeathSystem{world: ws}
}

func (s *DeathSystem) Phase() coresys.Phase { return coresys.PhaseResolve }

func (s *DeathSystem) Update(_ time.Duration) {
	ws := s.world
	p, ok := ws.Player()
	if !ok {
		return
	}
	at := *p.Transform
	radius := ws.Tuning.HitRadius

	for _, enemy := range ws.Enemies.IDs() {
		etr, ok := ws.Transforms.Get(enemy)
		if !ok {
			continue
		}
		// planar: depth never counts toward contact
		if etr.Pos.Dist(at.Pos) >= radius {
			continue
		}
		s.kill(p, enemy, at)
		return
	}
}

func (s *DeathSystem) kill(p world.PlayerView, enemy ecs.EntityID, at component.Transform) {
	ws := s.world
	score := p.Stats.Score
	ws.Despawn(p.ID)
	ws.SpawnBullets(ws.Tuning.DeathBurst, at, nil)
	ws.SpawnJerryCan(at.Pos)
	event.Emit(ws.Bus, event.PlayerKilled{
		Player: p.ID,
		Enemy:  enemy,
		Pos:    at.Pos,
		Score:  score,
	})
}
