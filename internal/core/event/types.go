package event

import (
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/geom"
)

type ShotFired struct {
	Player    ecs.EntityID
	Pos       geom.Vec2
	Rotation  float64
	AmmoLeft  uint32
	BatchSize int
}

type PlayerKilled struct {
	Player ecs.EntityID
	Enemy  ecs.EntityID
	Pos    geom.Vec2
	Score  uint32
}

type EnemySpawned struct {
	Enemy ecs.EntityID
	Kind  string
	Pos   geom.Vec2
}

type EnemyDestroyed struct {
	Enemy  ecs.EntityID
	Bullet ecs.EntityID
	Pos    geom.Vec2
}

type PickupCollected struct {
	Player     ecs.EntityID
	Pickup     ecs.EntityID
	AmmoBefore uint32
	AmmoAfter  uint32
}

type TargetTouched struct {
	Player ecs.EntityID
	Gained uint32
	Score  uint32
}

// WorldReset is emitted after the reset controller rebuilt the starting state.
type WorldReset struct {
	Player  ecs.EntityID
	Cleared int
}
