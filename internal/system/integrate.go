package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
)

// IntegrateSystem moves everything that has a velocity.
// Phase 2 (Integrate).
type IntegrateSystem struct {
	world *world.State
}

func NewIntegrateSystem(ws *world.State) *IntegrateSystem {
	return &IntegrateSystem{world: ws}
}

func (s *IntegrateSystem) Phase() coresys.Phase { return coresys.PhaseIntegrate }

func (s *IntegrateSystem) Update(dt time.Duration) {
	ecs.Each2(s.world.Velocities, s.world.Transforms, func(_ ecs.EntityID, v *component.Velocity, tr *component.Transform) {
		tr.Pos = Integrate(tr.Pos, v.V, dt)
	})
}
