package component

// Enemy is a hostile that steers at the player.
type Enemy struct {
	Kind  string
	Speed float64
}

// EnemySpawnTimer is held by the single spawner entity.
type EnemySpawnTimer struct {
	Timer Timer
}
