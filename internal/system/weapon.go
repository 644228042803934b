package system

import (
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
)

// WeaponState is the player's firing state, derived from the cooldown timer
// and the magazine.
type WeaponState uint8

const (
	// WeaponIdle: cooldown still running.
	WeaponIdle WeaponState = iota
	// WeaponReady: cooldown elapsed and ammunition left.
	WeaponReady
	// WeaponEmpty: out of ammunition. Only a pickup or a reset leaves it.
	WeaponEmpty
)

func (w WeaponState) String() string {
	switch w {
	case WeaponIdle:
		return "idle"
	case WeaponReady:
		return "ready"
	case WeaponEmpty:
		return "empty"
	}
	return "unknown"
}

// WeaponStateOf classifies the player's weapon.
func WeaponStateOf(stats *component.PlayerStats) WeaponState {
	if stats.Ammunition == 0 {
		return WeaponEmpty
	}
	if !timerFinished(&stats.ShootTimer) {
		return WeaponIdle
	}
	return WeaponReady
}

// tickWeapon advances the cooldown and, if the trigger is held and the
// weapon is ready, spends one round and restarts the cooldown.
// It reports whether a shot was fired.
func tickWeapon(stats *component.PlayerStats, trigger bool, dt time.Duration) bool {
	advanceTimer(&stats.ShootTimer, dt)
	if !trigger || WeaponStateOf(stats) != WeaponReady {
		return false
	}
	stats.Ammunition--
	resetTimer(&stats.ShootTimer)
	return true
}
