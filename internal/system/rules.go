package system

import "time"

// Rules decides the gameplay effects the core leaves open: what a pickup
// restores, what a target is worth, and how fast hostiles arrive.
// scripting.Engine implements it over Lua; DefaultRules is the built-in set.
type Rules interface {
	PickupAmmo(current, max uint32) uint32
	TargetScore(score uint32) uint32
	EnemySpawnInterval(score uint32, base time.Duration) time.Duration
}

// DefaultRules refills ammunition, scores one point per target and spawns
// hostiles at the configured interval.
type DefaultRules struct{}

func (DefaultRules) PickupAmmo(_, max uint32) uint32 { return max }

func (DefaultRules) TargetScore(uint32) uint32 { return 1 }

func (DefaultRules) EnemySpawnInterval(_ uint32, base time.Duration) time.Duration {
	return base
}
