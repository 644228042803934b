package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/input"
	"github.com/fuelrun/jerrycan/internal/world"
	"go.uber.org/zap"
)

// ResetSystem tears the world down to its starting state when reset is
// pressed. It runs last, so it sees every spawn and despawn of the tick.
// Phase 4 (Reset).
type ResetSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewResetSystem(ws *world.State, log *zap.Logger) *ResetSystem {
	return &ResetSystem{world: ws, log: log}
}

func (s *ResetSystem) Phase() coresys.Phase { return coresys.PhaseReset }

func (s *ResetSystem) Update(_ time.Duration) {
	if !s.world.Input.JustPressed(input.Reset) {
		return
	}
	ResetWorld(s.world, s.log)
}

// ResetWorld destroys every transient entity and reruns the initial spawn
// sequence. Each kind may be absent; that is not an error.
func ResetWorld(ws *world.State, log *zap.Logger) {
	cleared := 0
	cleared += world.DespawnAll(ws, ws.Players)
	cleared += world.DespawnAll(ws, ws.Targets)
	cleared += world.DespawnAll(ws, ws.Enemies)
	cleared += world.DespawnAll(ws, ws.Spawners)
	cleared += world.DespawnAll(ws, ws.Bullets)
	cleared += world.DespawnAll(ws, ws.JerryCans)
	cleared += world.DespawnAll(ws, ws.Indicators)
	cleared += world.DespawnAll(ws, ws.Stars)

	player := ws.Setup()
	log.Debug("world rebuilt", zap.Int("cleared", cleared), zap.Int("entities", ws.ECS.Len()))
	event.Emit(ws.Bus, event.WorldReset{Player: player, Cleared: cleared})
}
