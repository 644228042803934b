package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
)

// ProjectileSystem ages projectiles and removes the expired ones.
// Phase 3 (Resolve).
type ProjectileSystem struct {
	world *world.State
}

func NewProjectileSystem(ws *world.State) *ProjectileSystem {
	return &ProjectileSystem{world: ws}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseResolve }

func (s *ProjectileSystem) Update(dt time.Duration) {
	s.world.Bullets.Each(func(id ecs.EntityID, b *component.Bullet) {
		b.TTL -= dt
		if b.TTL <= 0 {
			s.world.Despawn(id)
		}
	})
}
