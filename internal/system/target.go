package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
)

// TargetSystem scores the player for reaching the target, records a star
// per point and moves the target somewhere new.
// Phase 3 (Resolve).
type TargetSystem struct {
	world *world.State
	rules Rules
}

func NewTargetSystem(ws *world.State, rules Rules) *TargetSystem {
	return &TargetSystem{world: ws, rules: rules}
}

func (s *TargetSystem) Phase() coresys.Phase { return coresys.PhaseResolve }

func (s *TargetSystem) Update(_ time.Duration) {
	ws := s.world
	p, ok := ws.Player()
	if !ok {
		return
	}
	id, target, ok := ws.Targets.First()
	if !ok {
		return
	}
	tr, ok := ws.Transforms.Get(id)
	if !ok || tr.Pos.Dist(p.Transform.Pos) >= target.Radius {
		return
	}

	gained := s.rules.TargetScore(p.Stats.Score)
	for i := uint32(0); i < gained; i++ {
		ws.SpawnStar(int(p.Stats.Score + i))
	}
	p.Stats.Score += gained
	ws.Despawn(id)
	ws.SpawnTarget()
	event.Emit(ws.Bus, event.TargetTouched{Player: p.ID, Gained: gained, Score: p.Stats.Score})
}
