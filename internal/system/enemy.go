package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/geom"
	"github.com/fuelrun/jerrycan/internal/world"
)

// EnemySpawnSystem runs the spawner's repeating timer. Each completion drops
// one hostile on a circle around the player. With no player nothing spawns,
// but the timer keeps running.
// Phase 1 (Control).
type EnemySpawnSystem struct {
	world *world.State
	rules Rules
}

func NewEnemySpawnSystem(ws *world.State, rules Rules) *EnemySpawnSystem {
	return &EnemySpawnSystem{world: ws, rules: rules}
}

func (s *EnemySpawnSystem) Phase() coresys.Phase { return coresys.PhaseControl }

func (s *EnemySpawnSystem) Update(dt time.Duration) {
	ws := s.world
	ws.Spawners.Each(func(_ ecs.EntityID, sp *component.EnemySpawnTimer) {
		n := advanceTimer(&sp.Timer, dt)
		if n == 0 {
			return
		}
		p, ok := ws.Player()
		if !ok {
			return
		}
		for i := 0; i < n; i++ {
			kind := ws.EnemyKinds.Pick(ws.Rng)
			pos := p.Transform.Pos.Add(geom.FromAngle(ws.RandAngle()).Scale(ws.Tuning.EnemySpawnDistance))
			id := ws.SpawnEnemy(pos, kind)
			event.Emit(ws.Bus, event.EnemySpawned{Enemy: id, Kind: kind.Kind, Pos: pos})
		}
		sp.Timer.Duration = s.rules.EnemySpawnInterval(p.Stats.Score, ws.Tuning.EnemySpawnInterval)
	})
}

// EnemySteerSystem points every hostile at the player at its kind's speed,
// capped at MaxSpeed. With no player, hostiles keep their last velocity.
// Phase 1 (Control), after the player has moved its controls.
type EnemySteerSystem struct {
	world *world.State
}

func NewEnemySteerSystem(ws *world.State) *EnemySteerSystem {
	return &EnemySteerSystem{world: ws}
}

func (s *EnemySteerSystem) Phase() coresys.Phase { return coresys.PhaseControl }

func (s *EnemySteerSystem) Update(_ time.Duration) {
	ws := s.world
	p, ok := ws.Player()
	if !ok {
		return
	}
	target := p.Transform.Pos
	limit := ws.Tuning.MaxSpeed
	ecs.Each3(ws.Enemies, ws.Transforms, ws.Velocities, func(_ ecs.EntityID, e *component.Enemy, tr *component.Transform, v *component.Velocity) {
		toward := target.Sub(tr.Pos)
		v.V = toward.WithLen(max(0, min(e.Speed, limit)))
		if !toward.IsZero() {
			tr.Rotation = toward.Angle()
		}
	})
}

// BulletHitSystem destroys hostiles struck by projectiles. The projectile is
// spent and the hostile bursts into a small spray.
// Phase 3 (Resolve).
type BulletHitSystem struct {
	world *world.State
	grid  *world.Grid
	near  []ecs.EntityID
}

func NewBulletHitSystem(ws *world.State) *BulletHitSystem {
	return &BulletHitSystem{world: ws}
}

func (s *BulletHitSystem) Phase() coresys.Phase { return coresys.PhaseResolve }

func (s *BulletHitSystem) Update(_ time.Duration) {
	ws := s.world
	if ws.Enemies.Len() == 0 || ws.Bullets.Len() == 0 {
		return
	}
	radius := ws.Tuning.EnemyHitRadius
	if s.grid == nil || s.grid.CellSize() < radius {
		s.grid = world.NewGrid(radius)
	}
	// bursts spawned below do not take part until next tick
	s.grid.Clear()
	ecs.Each2(ws.Bullets, ws.Transforms, func(id ecs.EntityID, _ *component.Bullet, tr *component.Transform) {
		s.grid.Add(id, tr.Pos)
	})

	ecs.Each2(ws.Enemies, ws.Transforms, func(enemy ecs.EntityID, _ *component.Enemy, etr *component.Transform) {
		s.near = s.grid.Nearby(etr.Pos, s.near)
		for _, b := range s.near {
			btr, ok := ws.Transforms.Get(b)
			if !ok {
				continue // spent on an earlier hostile
			}
			if btr.Pos.Dist(etr.Pos) >= radius {
				continue
			}
			at := *etr
			ws.Despawn(b)
			ws.Despawn(enemy)
			ws.SpawnBullets(ws.Tuning.EnemyBurst, at, nil)
			event.Emit(ws.Bus, event.EnemyDestroyed{Enemy: enemy, Bullet: b, Pos: at.Pos})
			return
		}
	})
}
