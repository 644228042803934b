package component

// PlayerStats marks the player entity and carries its weapon state.
type PlayerStats struct {
	Score      uint32
	Ammunition uint32
	ShootTimer Timer
}
