package system

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/fuelrun/jerrycan/internal/config"
	"github.com/fuelrun/jerrycan/internal/geom"
	"github.com/fuelrun/jerrycan/internal/input"
)

func TestBoostFromRestOneTick(t *testing.T) {
	tu := config.DefaultTuning()
	got := NextVelocity(geom.Zero, geom.FromAngle(0), true, tu)
	// clamp ceiling is the post-boost, pre-passive speed
	want := geom.Vec2{X: tu.BoostAcceleration * tu.Drag}
	if !got.ApproxEq(want, 1e-9) {
		t.Fatalf("velocity = %+v, want %+v", got, want)
	}
}

func TestPassiveThrustDoesNotStartFromRest(t *testing.T) {
	tu := config.DefaultTuning()
	got := NextVelocity(geom.Zero, geom.FromAngle(1.2), false, tu)
	if got != geom.Zero {
		t.Fatalf("velocity = %+v, want zero", got)
	}
}

func TestCancellingThrustYieldsZeroNotNaN(t *testing.T) {
	tu := config.DefaultTuning()
	dir := geom.FromAngle(0)
	v := dir.Scale(-tu.PassiveAcceleration)
	got := NextVelocity(v, dir, false, tu)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("NaN velocity %+v", got)
	}
	if got != geom.Zero {
		t.Fatalf("velocity = %+v, want zero", got)
	}
}

func TestClampUsesSpeedBeforePassiveThrust(t *testing.T) {
	tu := config.DefaultTuning()
	v := geom.Vec2{X: 10}
	dir := geom.Vec2{Y: 1}
	got := NextVelocity(v, dir, false, tu)

	if math.Abs(got.Len()-10*tu.Drag) > 1e-9 {
		t.Fatalf("|v| = %f, want %f", got.Len(), 10*tu.Drag)
	}
	wantDir := geom.Vec2{X: 10, Y: tu.PassiveAcceleration}.Normalize()
	if !got.Normalize().ApproxEq(wantDir, 1e-9) {
		t.Fatalf("direction = %+v, want %+v", got.Normalize(), wantDir)
	}
}

func TestSpeedClampedAtMax(t *testing.T) {
	tu := config.DefaultTuning()
	v := geom.Vec2{X: tu.MaxSpeed * 3}
	got := NextVelocity(v, geom.FromAngle(0), true, tu)
	if math.Abs(got.Len()-tu.MaxSpeed*tu.Drag) > 1e-9 {
		t.Fatalf("|v| = %f, want %f", got.Len(), tu.MaxSpeed*tu.Drag)
	}
}

func TestVelocityNeverExceedsMaxSpeed(t *testing.T) {
	tu := config.DefaultTuning()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		v := geom.FromAngle(r.Float64() * 2 * math.Pi).Scale(r.Float64() * tu.MaxSpeed * 10)
		dir := geom.FromAngle(r.Float64()*4*math.Pi - 2*math.Pi)
		boost := r.Intn(2) == 0
		got := NextVelocity(v, dir, boost, tu)
		if got.Len() > tu.MaxSpeed {
			t.Fatalf("iteration %d: |v| = %f > %f (v=%+v dir=%+v boost=%v)", i, got.Len(), tu.MaxSpeed, v, dir, boost)
		}
	}
}

func TestVelocityBoundedOverManyTicks(t *testing.T) {
	ws := newWorld(t)
	r := rand.New(rand.NewSource(11))
	sys := NewControlSystem(ws)
	for i := 0; i < 5000; i++ {
		var in input.Snapshot
		for _, a := range []input.Action{input.TurnLeft, input.TurnRight, input.Boost, input.Fire} {
			if r.Intn(2) == 0 {
				in.Hold(a)
			}
		}
		ws.Input = in
		sys.Update(time.Duration(r.Int63n(int64(100 * time.Millisecond))))
		p := mustPlayer(t, ws)
		if p.Velocity.V.Len() > ws.Tuning.MaxSpeed {
			t.Fatalf("tick %d: |v| = %f", i, p.Velocity.V.Len())
		}
	}
}

func TestRotate(t *testing.T) {
	const rate = 2.0
	cases := []struct {
		name string
		in   input.Snapshot
		want float64
	}{
		{"none", input.Of(), 0.5},
		{"left", input.Of(input.TurnLeft), 0.5 + rate*0.25},
		{"right", input.Of(input.TurnRight), 0.5 - rate*0.25},
		{"both", input.Of(input.TurnLeft, input.TurnRight), 0.5},
	}
	for _, c := range cases {
		got := Rotate(0.5, c.in, rate, 250*time.Millisecond)
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("%s: rotation = %f, want %f", c.name, got, c.want)
		}
	}
}

func TestRotateWraps(t *testing.T) {
	got := Rotate(math.Pi-0.1, input.Of(input.TurnLeft), 1, 200*time.Millisecond)
	if got >= math.Pi || got < -math.Pi {
		t.Fatalf("rotation %f not wrapped", got)
	}
	if math.Abs(got-(-math.Pi+0.1)) > 1e-9 {
		t.Fatalf("rotation = %f, want %f", got, -math.Pi+0.1)
	}
}

func TestIntegrate(t *testing.T) {
	got := Integrate(geom.Vec2{X: 1, Y: 1}, geom.Vec2{X: 4, Y: -2}, 500*time.Millisecond)
	if !got.ApproxEq(geom.Vec2{X: 3, Y: 0}, 1e-12) {
		t.Fatalf("Integrate = %+v", got)
	}
}
