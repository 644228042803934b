package geom

import (
	"math"
	"testing"
)

func TestNormalizeZeroStaysZero(t *testing.T) {
	if got := Zero.Normalize(); got != Zero {
		t.Fatalf("Normalize(0) = %+v", got)
	}
	if got := Zero.WithLen(5); got != Zero {
		t.Fatalf("WithLen(0, 5) = %+v", got)
	}
	nan := Vec2{X: math.NaN()}
	if got := nan.Normalize(); got != Zero {
		t.Fatalf("Normalize(NaN) = %+v", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	cases := []Vec2{{3, 4}, {-1, 0}, {0, -0.001}, {1e6, 1e6}}
	for _, v := range cases {
		n := v.Normalize()
		if math.Abs(n.Len()-1) > 1e-12 {
			t.Fatalf("|Normalize(%+v)| = %f", v, n.Len())
		}
	}
}

func TestFromAngle(t *testing.T) {
	cases := []struct {
		angle float64
		want  Vec2
	}{
		{0, Vec2{1, 0}},
		{math.Pi / 2, Vec2{0, 1}},
		{math.Pi, Vec2{-1, 0}},
	}
	for _, c := range cases {
		if got := FromAngle(c.angle); !got.ApproxEq(c.want, 1e-12) {
			t.Fatalf("FromAngle(%f) = %+v, want %+v", c.angle, got, c.want)
		}
	}
}

func TestNormalizeAngleRange(t *testing.T) {
	for _, a := range []float64{0, 3, -3, 7, -7, 100, -100, math.Pi, -math.Pi} {
		n := NormalizeAngle(a)
		if n < -math.Pi || n >= math.Pi {
			t.Fatalf("NormalizeAngle(%f) = %f out of range", a, n)
		}
		if !FromAngle(a).ApproxEq(FromAngle(n), 1e-9) {
			t.Fatalf("NormalizeAngle(%f) changed direction", a)
		}
	}
}
