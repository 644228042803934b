package world

import (
	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/data"
	"github.com/fuelrun/jerrycan/internal/geom"
)

// Draw depths. Collision never looks at these.
const (
	DepthBullet    = 0
	DepthJerryCan  = 4
	DepthTarget    = 5
	DepthEnemy     = 8
	DepthPlayer    = 10
	DepthIndicator = 20
)

// Setup runs the initial spawn sequence: player, hostile spawner, target.
func (s *State) Setup() ecs.EntityID {
	player := s.SpawnPlayer()
	s.SpawnEnemySpawner()
	s.SpawnTarget()
	return player
}

// SpawnPlayer creates a fresh player at the origin with full ammunition,
// zero score and a cooldown that has not yet elapsed.
func (s *State) SpawnPlayer() ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Transforms.Set(id, &component.Transform{Z: DepthPlayer})
	s.Velocities.Set(id, &component.Velocity{})
	s.Players.Set(id, &component.PlayerStats{
		Ammunition: s.Tuning.StartAmmunition,
		ShootTimer: component.Timer{Duration: s.Tuning.ShootCooldown},
	})
	return id
}

// SpawnEnemySpawner creates the entity holding the repeating hostile timer.
func (s *State) SpawnEnemySpawner() ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Spawners.Set(id, &component.EnemySpawnTimer{
		Timer: component.Timer{Duration: s.Tuning.EnemySpawnInterval, Repeat: true},
	})
	return id
}

// SpawnTarget places the goal marker at a random bearing, at a distance in
// [TargetDistanceMin, TargetDistanceMax) from the origin.
func (s *State) SpawnTarget() ecs.EntityID {
	dist := s.RandRange(s.Tuning.TargetDistanceMin, s.Tuning.TargetDistanceMax)
	pos := geom.FromAngle(s.RandAngle()).Scale(dist)
	id := s.ECS.CreateEntity()
	s.Transforms.Set(id, &component.Transform{Pos: pos, Z: DepthTarget})
	s.Targets.Set(id, &component.Target{Radius: s.Tuning.TargetRadius})
	return id
}

// SpawnEnemy creates a hostile of the given kind at rest.
func (s *State) SpawnEnemy(pos geom.Vec2, kind data.EnemyKind) ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Transforms.Set(id, &component.Transform{Pos: pos, Z: DepthEnemy})
	s.Velocities.Set(id, &component.Velocity{})
	s.Enemies.Set(id, &component.Enemy{Kind: kind.Kind, Speed: kind.Speed})
	return id
}

// SpawnBullets creates n projectiles at origin's position. With aim set every
// projectile flies away from that angle (the muzzle faces backwards, thrust
// forwards); with aim nil each gets its own random angle, for bursts.
func (s *State) SpawnBullets(n int, origin component.Transform, aim *float64) []ecs.EntityID {
	t := s.Tuning
	ids := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		var angle float64
		if aim != nil {
			angle = *aim
		} else {
			angle = s.RandAngle()
		}
		vel := geom.FromAngle(angle).Scale(-t.BulletSpeed).
			Add(geom.FromAngle(s.RandAngle()).Scale(t.BulletVelocityOffset))

		id := s.ECS.CreateEntity()
		s.Transforms.Set(id, &component.Transform{
			Pos:      origin.Pos,
			Z:        DepthBullet,
			Rotation: vel.Angle(),
		})
		s.Velocities.Set(id, &component.Velocity{V: vel})
		s.Bullets.Set(id, &component.Bullet{
			Color:  bulletColor(s.Rng.Intn(6)),
			Radius: s.RandRange(t.BulletRadiusMin, t.BulletRadiusMax),
			TTL:    s.RandDuration(t.BulletTTLMin, t.BulletTTLMax),
		})
		ids = append(ids, id)
	}
	return ids
}

// bulletColor maps a d6 roll: 0-1 ember, 2 flame, 3-4 spark, 5 smoke.
func bulletColor(roll int) component.BulletColor {
	switch {
	case roll <= 1:
		return component.BulletEmber
	case roll <= 2:
		return component.BulletFlame
	case roll <= 4:
		return component.BulletSpark
	default:
		return component.BulletSmoke
	}
}

// SpawnJerryCan drops a pickup at pos.
func (s *State) SpawnJerryCan(pos geom.Vec2) ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Transforms.Set(id, &component.Transform{Pos: pos, Z: DepthJerryCan})
	s.JerryCans.Set(id, &component.JerryCan{})
	return id
}

// SpawnIndicator places a pickup marker at pos, rotated to face along rotation.
func (s *State) SpawnIndicator(pos geom.Vec2, rotation float64) ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Transforms.Set(id, &component.Transform{Pos: pos, Z: DepthIndicator, Rotation: rotation})
	s.Indicators.Set(id, &component.UIJerryCan{})
	return id
}

// SpawnStar records one collected point.
func (s *State) SpawnStar(index int) ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Stars.Set(id, &component.Star{Index: index})
	return id
}

// Despawn destroys an entity. Already-gone handles are ignored.
func (s *State) Despawn(id ecs.EntityID) bool {
	return s.ECS.Destroy(id)
}

// DespawnAll destroys every entity in store and reports how many went.
func DespawnAll[T any](s *State, store *ecs.Store[T]) int {
	n := 0
	for _, id := range store.IDs() {
		if s.ECS.Destroy(id) {
			n++
		}
	}
	return n
}
