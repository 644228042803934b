package world

import (
	"math"
	"testing"
	"time"

	"github.com/fuelrun/jerrycan/internal/component"
	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/geom"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(config.DefaultTuning(), nil, 1)
}

func TestSetupSpawnsStartingEntities(t *testing.T) {
	s := newTestState(t)
	s.Setup()

	c := s.Counts()
	if c.Players != 1 || c.Spawners != 1 || c.Targets != 1 {
		t.Fatalf("counts after setup = %+v", c)
	}
	p, ok := s.Player()
	if !ok {
		t.Fatal("no player after setup")
	}
	if p.Stats.Ammunition != s.Tuning.StartAmmunition || p.Stats.Score != 0 {
		t.Fatalf("stats = %+v", p.Stats)
	}
	if p.Stats.ShootTimer.Elapsed != 0 || p.Stats.ShootTimer.Duration != s.Tuning.ShootCooldown {
		t.Fatalf("shoot timer = %+v", p.Stats.ShootTimer)
	}
	if !p.Velocity.V.IsZero() || p.Transform.Pos != geom.Zero || p.Transform.Rotation != 0 {
		t.Fatalf("player pose = %+v vel = %+v", p.Transform, p.Velocity)
	}
}

func TestTargetPlacedWithinDistanceBand(t *testing.T) {
	s := newTestState(t)
	for i := 0; i < 200; i++ {
		id := s.SpawnTarget()
		tr, _ := s.Transforms.Get(id)
		d := tr.Pos.Len()
		if d < s.Tuning.TargetDistanceMin-1e-9 || d >= s.Tuning.TargetDistanceMax+1e-9 {
			t.Fatalf("target at distance %f", d)
		}
	}
}

func TestPlayerAbsentIsNotAnError(t *testing.T) {
	s := newTestState(t)
	if _, ok := s.Player(); ok {
		t.Fatal("player found in empty world")
	}
	if s.Score() != 0 {
		t.Fatal("score without player")
	}
}

func TestSpawnBulletsAimedWithoutJitter(t *testing.T) {
	s := newTestState(t)
	s.Tuning.BulletVelocityOffset = 0
	aim := 0.0
	origin := component.Transform{Pos: geom.Vec2{X: 5, Y: -3}, Z: DepthPlayer}

	ids := s.SpawnBullets(10, origin, &aim)
	if len(ids) != 10 || s.Bullets.Len() != 10 {
		t.Fatalf("spawned %d, store has %d", len(ids), s.Bullets.Len())
	}
	for _, id := range ids {
		vel, _ := s.Velocities.Get(id)
		want := geom.Vec2{X: -s.Tuning.BulletSpeed}
		if !vel.V.ApproxEq(want, 1e-9) {
			t.Fatalf("velocity = %+v, want %+v", vel.V, want)
		}
		tr, _ := s.Transforms.Get(id)
		if tr.Pos != origin.Pos || tr.Z != DepthBullet {
			t.Fatalf("transform = %+v", tr)
		}
		if math.Abs(math.Abs(tr.Rotation)-math.Pi) > 1e-9 {
			t.Fatalf("rotation = %f, want +-Pi", tr.Rotation)
		}
		b, _ := s.Bullets.Get(id)
		if b.TTL < s.Tuning.BulletTTLMin || b.TTL >= s.Tuning.BulletTTLMax {
			t.Fatalf("ttl = %v", b.TTL)
		}
		if b.Radius < s.Tuning.BulletRadiusMin || b.Radius >= s.Tuning.BulletRadiusMax {
			t.Fatalf("radius = %f", b.Radius)
		}
	}
}

func TestBurstSpeedWithinJitterBand(t *testing.T) {
	s := newTestState(t)
	ids := s.SpawnBullets(200, component.Transform{}, nil)
	lo := s.Tuning.BulletSpeed - s.Tuning.BulletVelocityOffset
	hi := s.Tuning.BulletSpeed + s.Tuning.BulletVelocityOffset
	for _, id := range ids {
		vel, _ := s.Velocities.Get(id)
		if sp := vel.V.Len(); sp < lo-1e-9 || sp > hi+1e-9 {
			t.Fatalf("burst speed %f outside [%f, %f]", sp, lo, hi)
		}
	}
}

func TestTTLStaggeredWithinBatch(t *testing.T) {
	s := newTestState(t)
	ids := s.SpawnBullets(20, component.Transform{}, nil)
	seen := map[time.Duration]bool{}
	for _, id := range ids {
		b, _ := s.Bullets.Get(id)
		seen[b.TTL] = true
	}
	if len(seen) < 2 {
		t.Fatal("every bullet in the batch got the same ttl")
	}
}

func TestBulletColorRolls(t *testing.T) {
	want := []component.BulletColor{
		component.BulletEmber, component.BulletEmber, component.BulletFlame,
		component.BulletSpark, component.BulletSpark, component.BulletSmoke,
	}
	for roll, c := range want {
		if got := bulletColor(roll); got != c {
			t.Fatalf("roll %d = %s, want %s", roll, got, c)
		}
	}
}

func TestRandGuardsEmptyRanges(t *testing.T) {
	s := newTestState(t)
	if got := s.RandRange(3, 3); got != 3 {
		t.Fatalf("RandRange(3,3) = %f", got)
	}
	if got := s.RandRange(5, 1); got != 5 {
		t.Fatalf("RandRange(5,1) = %f", got)
	}
	if got := s.RandDuration(time.Second, time.Second); got != time.Second {
		t.Fatalf("RandDuration empty = %v", got)
	}
}

func TestDespawnAllAndIdempotentDespawn(t *testing.T) {
	s := newTestState(t)
	s.SpawnBullets(5, component.Transform{}, nil)
	can := s.SpawnJerryCan(geom.Vec2{X: 1})

	if n := DespawnAll(s, s.Bullets); n != 5 {
		t.Fatalf("DespawnAll removed %d", n)
	}
	if s.Bullets.Len() != 0 || s.Velocities.Len() != 0 {
		t.Fatal("bullet components survived")
	}
	if !s.Despawn(can) || s.Despawn(can) {
		t.Fatal("despawn not idempotent")
	}
	if s.Transforms.Len() != 0 {
		t.Fatalf("transforms left: %d", s.Transforms.Len())
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := NewState(config.DefaultTuning(), nil, 99)
	b := NewState(config.DefaultTuning(), nil, 99)
	a.Setup()
	b.Setup()
	ida := a.SpawnBullets(3, component.Transform{}, nil)
	idb := b.SpawnBullets(3, component.Transform{}, nil)
	for i := range ida {
		va, _ := a.Velocities.Get(ida[i])
		vb, _ := b.Velocities.Get(idb[i])
		if va.V != vb.V {
			t.Fatalf("seeded runs diverged: %+v vs %+v", va.V, vb.V)
		}
	}
}
