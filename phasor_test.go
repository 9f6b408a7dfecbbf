package chalk

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	assertNear(t, "zero", WrapAngle(0), 0)
	assertNear(t, "identity", WrapAngle(1.5), 1.5)
	assertNear(t, "full turn", WrapAngle(Tau), 0)
	assertNear(t, "turn and a half", WrapAngle(3*math.Pi), math.Pi)
	assertNear(t, "negative", WrapAngle(-math.Pi/2), 3*math.Pi/2)
	if w := WrapAngle(-1e-9); w < 0 || w >= Tau {
		t.Errorf("wrapped angle %v outside [0, 2π)", w)
	}
}

func TestDegreesRadians(t *testing.T) {
	assertNear(t, "180°", Radians(180), math.Pi)
	assertNear(t, "π rad", Degrees(math.Pi), 180)
	assertNear(t, "roundtrip", Degrees(Radians(73.5)), 73.5)
}

func TestPhasorPointCardinals(t *testing.T) {
	// Quarter-turn multiples land exactly on the 1 → j → -1 → -j cycle.
	assertVec2(t, "θ=0", PhasorPoint(0), Vec2{1, 0})
	assertVec2(t, "θ=π/2", PhasorPoint(math.Pi/2), Vec2{0, 1})
	assertVec2(t, "θ=π", PhasorPoint(math.Pi), Vec2{-1, 0})
	assertVec2(t, "θ=3π/2", PhasorPoint(3*math.Pi/2), Vec2{0, -1})
	assertVec2(t, "θ=2π", PhasorPoint(Tau), Vec2{1, 0})

	if p := PhasorPoint(math.Pi); p.X != -1 || p.Y != 0 {
		t.Errorf("θ=π must be exact, got %v", p)
	}
}

func TestPhasorPointUnitMagnitude(t *testing.T) {
	for theta := -10.0; theta <= 10.0; theta += 0.1 {
		p := PhasorPoint(theta)
		if math.Abs(p.X*p.X+p.Y*p.Y-1) > 1e-9 {
			t.Errorf("θ=%v: |e^(jθ)|² = %v", theta, p.X*p.X+p.Y*p.Y)
		}
	}
}

func TestPhasorPointPeriodic(t *testing.T) {
	for _, theta := range []float64{0.3, 1.1, 2.9, 4.2} {
		a := PhasorPoint(theta)
		b := PhasorPoint(theta + Tau)
		assertNearTol(t, "re period", a.X, b.X, 1e-12)
		assertNearTol(t, "im period", a.Y, b.Y, 1e-12)
	}
}

func TestCardinalSnap(t *testing.T) {
	cases := []struct {
		theta float64
		label string
		point Vec2
	}{
		{0, "1", Vec2{1, 0}},
		{math.Pi / 2, "j", Vec2{0, 1}},
		{math.Pi, "-1", Vec2{-1, 0}},
		{3 * math.Pi / 2, "-j", Vec2{0, -1}},
		{Tau, "1", Vec2{1, 0}},
		{5 * math.Pi / 2, "j", Vec2{0, 1}}, // wraps
		{-math.Pi / 2, "-j", Vec2{0, -1}}, // negative wraps
	}
	for _, tc := range cases {
		c, ok := CardinalSnap(tc.theta)
		if !ok {
			t.Errorf("θ=%v: expected a cardinal", tc.theta)
			continue
		}
		if c.Label != tc.label {
			t.Errorf("θ=%v: label %q, want %q", tc.theta, c.Label, tc.label)
		}
		assertVec2(t, "point", c.Point, tc.point)
	}

	if _, ok := CardinalSnap(1); ok {
		t.Error("θ=1 is not a cardinal")
	}
	if _, ok := CardinalSnap(math.Pi / 4); ok {
		t.Error("θ=π/4 is not a cardinal")
	}
}

func TestHelixPoint(t *testing.T) {
	p := HelixPoint(0, 3)
	assertNear(t, "start x", p.X, 0)
	assertNear(t, "start y", p.Y, 0)
	assertNear(t, "start z", p.Z, 1)

	// One full turn advances the helix by the pitch.
	p = HelixPoint(Tau, 3)
	assertNear(t, "turn x", p.X, 3)
	assertNearTol(t, "turn y", p.Y, 0, 1e-9)
	assertNearTol(t, "turn z", p.Z, 1, 1e-9)

	// The cross-section stays on the unit circle.
	for theta := 0.0; theta < 4*math.Pi; theta += 0.3 {
		p := HelixPoint(theta, 3)
		assertNearTol(t, "radius", p.Y*p.Y+p.Z*p.Z, 1, 1e-9)
	}
}

func TestHelixPath(t *testing.T) {
	pts := HelixPath(0, Tau, 8, 2)
	if len(pts) != 9 {
		t.Fatalf("expected 9 points, got %d", len(pts))
	}
	assertNear(t, "first x", pts[0].X, 0)
	assertNear(t, "last x", pts[8].X, 2)

	// n < 1 clamps to a single segment.
	if got := len(HelixPath(0, 1, 0, 1)); got != 2 {
		t.Errorf("clamped path has %d points, want 2", got)
	}
}

func TestWaveSamples(t *testing.T) {
	pts := WaveSamples(math.Cos, 0, math.Pi, 4)
	if len(pts) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(pts))
	}
	assertNear(t, "first", pts[0].Y, 1)
	assertNearTol(t, "mid", pts[2].Y, 0, 1e-12)
	assertNear(t, "last", pts[4].Y, -1)
	assertNear(t, "last x", pts[4].X, math.Pi)
}
