// Package game assembles the simulation: world state, rules and the ordered
// system pipeline. Hosts drive it one tick at a time.
package game

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/config"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/data"
	"github.com/fuelrun/jerrycan/internal/input"
	"github.com/fuelrun/jerrycan/internal/system"
	"github.com/fuelrun/jerrycan/internal/world"
	"go.uber.org/zap"
)

// Deps are the collaborators a Game needs. Only Tuning is required.
type Deps struct {
	Tuning     config.Tuning
	EnemyKinds *data.EnemyTable // nil = built-in hostile
	Rules      system.Rules     // nil = system.DefaultRules
	Source     input.Source     // nil = snapshots come only through Step
	Seed       int64            // 0 = clock
	Log        *zap.Logger      // nil = no logging
}

// Game owns one simulation.
type Game struct {
	world   *world.State
	runner  *coresys.Runner
	source  input.Source
	pending input.Snapshot
	log     *zap.Logger
}

// New builds a game with the starting entities already spawned.
func New(deps Deps) *Game {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	rules := deps.Rules
	if rules == nil {
		rules = system.DefaultRules{}
	}

	ws := world.NewState(deps.Tuning, deps.EnemyKinds, deps.Seed)
	g := &Game{world: ws, source: deps.Source, log: log}
	system.SubscribeLogging(ws.Bus, log)

	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(ws, input.SourceFunc(g.poll)))
	runner.Register(system.NewEventSystem(ws))
	runner.Register(system.NewControlSystem(ws))
	runner.Register(system.NewEnemySpawnSystem(ws, rules))
	runner.Register(system.NewEnemySteerSystem(ws))
	runner.Register(system.NewIntegrateSystem(ws))
	runner.Register(system.NewProjectileSystem(ws))
	runner.Register(system.NewBulletHitSystem(ws))
	runner.Register(system.NewTargetSystem(ws, rules))
	runner.Register(system.NewPickupSystem(ws, rules))
	runner.Register(system.NewDeathSystem(ws))
	runner.Register(system.NewIndicatorSystem(ws))
	runner.Register(system.NewResetSystem(ws, log))
	g.runner = runner

	ws.Setup()
	return g
}

// poll hands InputSystem the snapshot of the tick in flight.
func (g *Game) poll() input.Snapshot {
	return g.pending
}

// Step runs one tick with an explicit input snapshot.
func (g *Game) Step(dt time.Duration, in input.Snapshot) {
	g.pending = in
	g.runner.Tick(dt)
	g.pending = input.Snapshot{}
	g.world.Tick++
}

// Advance runs one tick reading input from the configured source.
func (g *Game) Advance(dt time.Duration) {
	var in input.Snapshot
	if g.source != nil {
		in = g.source.Poll()
	}
	g.Step(dt, in)
}

// World exposes the simulation state for hosts (drawing, HUD) and tests.
func (g *Game) World() *world.State { return g.world }

// Score is the player's score, 0 while no player exists.
func (g *Game) Score() uint32 { return g.world.Score() }

// Reset rebuilds the starting state outside the input path.
func (g *Game) Reset() {
	system.ResetWorld(g.world, g.log)
}
