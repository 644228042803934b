package system

import (
	"time"

	coresys "github.com/fuelrun/jerrycan/internal/core/system"
	"github.com/fuelrun/jerrycan/internal/input"
	"github.com/fuelrun/jerrycan/internal/world"
)

// InputSystem latches one snapshot from the host per tick.
// Phase 0 (Input).
type InputSystem struct {
	world  *world.State
	source input.Source
}

func NewInputSystem(ws *world.State, source input.Source) *InputSystem {
	return &InputSystem{world: ws, source: source}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	if s.source == nil {
		s.world.Input = input.Snapshot{}
		return
	}
	s.world.Input = s.source.Poll()
}
