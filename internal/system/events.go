package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/core/event"
	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/world"
	"go.uber.org/zap"
)

// EventSystem delivers the events the previous tick emitted.
// Phase 0 (Input), after InputSystem.
type EventSystem struct {
	bus *event.Bus
}

func NewEventSystem(ws *world.State) *EventSystem {
	return &EventSystem{bus: ws.Bus}
}

func (s *EventSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *EventSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

// SubscribeLogging writes every gameplay event to log.
func SubscribeLogging(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(e event.ShotFired) {
		log.Debug("shot fired",
			zap.Uint32("ammo_left", e.AmmoLeft),
			zap.Int("batch", e.BatchSize),
			zap.Float64("rotation", e.Rotation),
		)
	})
	event.Subscribe(bus, func(e event.PlayerKilled) {
		log.Info("player killed",
			zap.Float64("x", e.Pos.X),
			zap.Float64("y", e.Pos.Y),
			zap.Uint32("score", e.Score),
		)
	})
	event.Subscribe(bus, func(e event.EnemySpawned) {
		log.Debug("hostile spawned",
			zap.String("kind", e.Kind),
			zap.Float64("x", e.Pos.X),
			zap.Float64("y", e.Pos.Y),
		)
	})
	event.Subscribe(bus, func(e event.EnemyDestroyed) {
		log.Debug("hostile destroyed",
			zap.Float64("x", e.Pos.X),
			zap.Float64("y", e.Pos.Y),
		)
	})
	event.Subscribe(bus, func(e event.PickupCollected) {
		log.Info("jerry can collected",
			zap.Uint32("ammo_before", e.AmmoBefore),
			zap.Uint32("ammo_after", e.AmmoAfter),
		)
	})
	event.Subscribe(bus, func(e event.TargetTouched) {
		log.Info("target reached",
			zap.Uint32("gained", e.Gained),
			zap.Uint32("score", e.Score),
		)
	})
	event.Subscribe(bus, func(e event.WorldReset) {
		log.Info("world reset", zap.Int("cleared", e.Cleared))
	})
}
