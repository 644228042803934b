package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput     Phase = iota // 0: poll input, dispatch last tick's events
	PhaseControl                // 1: rotation, weapon, motion, hostile steering
	PhaseIntegrate              // 2: position += velocity * dt
	PhaseResolve                // 3: aging, collisions, pickups, death
	PhaseReset                  // 4: world reset, sees every earlier spawn/despawn
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseControl:
		return "control"
	case PhaseIntegrate:
		return "integrate"
	case PhaseResolve:
		return "resolve"
	case PhaseReset:
		return "reset"
	}
	return "unknown"
}

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
