package system

import (
	"testing"

	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/core/ecs"
	"github.com/fuelrun/jerrycan/internal/data"
	"github.com/fuelrun/jerrycan/internal/geom"
	"github.com/fuelrun/jerrycan/internal/world"
)

// newWorld returns a seeded world with the starting entities spawned.
func newWorld(t *testing.T) *world.State {
	t.Helper()
	ws := world.NewState(config.DefaultTuning(), nil, 1)
	ws.Setup()
	return ws
}

func mustPlayer(t *testing.T, ws *world.State) world.PlayerView {
	t.Helper()
	p, ok := ws.Player()
	if !ok {
		t.Fatal("no player")
	}
	return p
}

func placeEnemy(ws *world.State, pos geom.Vec2) ecs.EntityID {
	return ws.SpawnEnemy(pos, data.EnemyKind{Kind: "test", Speed: 10, Weight: 1})
}

func posOf(t *testing.T, ws *world.State, id ecs.EntityID) geom.Vec2 {
	t.Helper()
	tr, ok := ws.Transforms.Get(id)
	if !ok {
		t.Fatalf("entity %d has no transform", id)
	}
	return tr.Pos
}
