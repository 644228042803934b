package world

import (
	"math/rand"
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/core/event"
	"github.com/fuelrun/jerrycan/internal/data"
	"github.com/fuelrun/jerrycan/internal/input"
)

// State is the whole simulation: the entity arena, one typed store per
// component, the tick's input snapshot and the shared services every phase
// needs. It is passed by pointer to each system. Accessed only from the game
// loop goroutine, no locks needed.
type State struct {
	ECS *ecs.World

	Transforms *ecs.Store[component.Transform]
	Velocities *ecs.Store[component.Velocity]
	Players    *ecs.Store[component.PlayerStats]
	Bullets    *ecs.Store[component.Bullet]
	Enemies    *ecs.Store[component.Enemy]
	Spawners   *ecs.Store[component.EnemySpawnTimer]
	JerryCans  *ecs.Store[component.JerryCan]
	Indicators *ecs.Store[component.UIJerryCan]
	Targets    *ecs.Store[component.Target]
	Stars      *ecs.Store[component.Star]

	Tuning     config.Tuning
	EnemyKinds *data.EnemyTable
	Rng        *rand.Rand
	Bus        *event.Bus

	// Input is the snapshot for the tick being simulated.
	Input input.Snapshot
	// Tick counts completed simulation steps.
	Tick uint64
}

// NewState builds an empty world. seed 0 seeds from the clock; anything
// else gives a reproducible run. kinds may be nil.
func NewState(tuning config.Tuning, kinds *data.EnemyTable, seed int64) *State {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := ecs.NewWorld()
	s := &State{
		ECS:        w,
		Transforms: ecs.NewStore[component.Transform](),
		Velocities: ecs.NewStore[component.Velocity](),
		Players:    ecs.NewStore[component.PlayerStats](),
		Bullets:    ecs.NewStore[component.Bullet](),
		Enemies:    ecs.NewStore[component.Enemy](),
		Spawners:   ecs.NewStore[component.EnemySpawnTimer](),
		JerryCans:  ecs.NewStore[component.JerryCan](),
		Indicators: ecs.NewStore[component.UIJerryCan](),
		Targets:    ecs.NewStore[component.Target](),
		Stars:      ecs.NewStore[component.Star](),
		Tuning:     tuning,
		EnemyKinds: kinds,
		Rng:        rand.New(rand.NewSource(seed)),
		Bus:        event.NewBus(),
	}
	reg := w.Registry()
	reg.Register(s.Transforms)
	reg.Register(s.Velocities)
	reg.Register(s.Players)
	reg.Register(s.Bullets)
	reg.Register(s.Enemies)
	reg.Register(s.Spawners)
	reg.Register(s.JerryCans)
	reg.Register(s.Indicators)
	reg.Register(s.Targets)
	reg.Register(s.Stars)
	return s
}

// PlayerView bundles the player's components for a single lookup.
type PlayerView struct {
	ID        ecs.EntityID
	Transform *component.Transform
	Velocity  *component.Velocity
	Stats     *component.PlayerStats
}

// Player returns the live player. ok is false when there is none (dead,
// not yet spawned, or mid-reset); callers treat that as a no-op tick.
func (s *State) Player() (PlayerView, bool) {
	id, stats, ok := s.Players.First()
	if !ok {
		return PlayerView{}, false
	}
	tr, ok := s.Transforms.Get(id)
	if !ok {
		return PlayerView{}, false
	}
	vel, ok := s.Velocities.Get(id)
	if !ok {
		return PlayerView{}, false
	}
	return PlayerView{ID: id, Transform: tr, Velocity: vel, Stats: stats}, true
}

// Score is the one externally observable scalar. 0 with no player.
func (s *State) Score() uint32 {
	if p, ok := s.Player(); ok {
		return p.Stats.Score
	}
	return 0
}

// Counts is a census of the entity kinds, used by hosts and tests.
type Counts struct {
	Players, Targets, Spawners, Enemies, Bullets, JerryCans, Indicators, Stars int
}

func (s *State) Counts() Counts {
	return Counts{
		Players:    s.Players.Len(),
		Targets:    s.Targets.Len(),
		Spawners:   s.Spawners.Len(),
		Enemies:    s.Enemies.Len(),
		Bullets:    s.Bullets.Len(),
		JerryCans:  s.JerryCans.Len(),
		Indicators: s.Indicators.Len(),
		Stars:      s.Stars.Len(),
	}
}
