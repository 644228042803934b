package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
)

// IndicatorSystem rebuilds the pickup markers: one per jerry can, placed
// IndicatorDistance from the player along the bearing to the can. Markers
// keep no link to their can, so they are recreated from positions each tick.
// Phase 3 (Resolve), last.
type IndicatorSystem struct {
	world *world.State
}

func NewIndicatorSystem(ws *world.State) *IndicatorSystem {
	return &IndicatorSystem{world: ws}
}

func (s *IndicatorSystem) Phase() coresys.Phase { return coresys.PhaseResolve }

func (s *IndicatorSystem) Update(_ time.Duration) {
	ws := s.world
	world.DespawnAll(ws, ws.Indicators)
	p, ok := ws.Player()
	if !ok {
		return
	}
	origin := p.Transform.Pos
	ecs.Each2(ws.JerryCans, ws.Transforms, func(_ ecs.EntityID, _ *component.JerryCan, tr *component.Transform) {
		bearing := tr.Pos.Sub(origin).Normalize()
		if bearing.IsZero() {
			return
		}
		ws.SpawnIndicator(origin.Add(bearing.Scale(ws.Tuning.IndicatorDistance)), bearing.Angle())
	})
}
