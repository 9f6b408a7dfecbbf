package chalk

import (
	"math"
	"testing"
)

func testAxes() *Axes {
	return NewAxes(
		Range{Min: -2, Max: 2},
		Range{Min: -1, Max: 1},
		Rect{X: 100, Y: 50, Width: 400, Height: 200},
	)
}

func TestAxesCorners(t *testing.T) {
	ax := testAxes()
	// Math Y up, screen Y down: (min, min) maps to the bottom-left.
	assertVec2(t, "bottom-left", ax.C2P(-2, -1), Vec2{100, 250})
	assertVec2(t, "top-right", ax.C2P(2, 1), Vec2{500, 50})
	assertVec2(t, "origin", ax.Origin(), Vec2{300, 150})
}

func TestAxesRoundtrip(t *testing.T) {
	ax := testAxes()
	for x := -2.0; x <= 2.0; x += 0.5 {
		for y := -1.0; y <= 1.0; y += 0.25 {
			p := ax.C2P(x, y)
			back := ax.P2C(p.X, p.Y)
			assertNearTol(t, "x roundtrip", back.X, x, 1e-9)
			assertNearTol(t, "y roundtrip", back.Y, y, 1e-9)
		}
	}
}

func TestAxesUnitSize(t *testing.T) {
	ax := testAxes()
	ux, uy := ax.UnitSize()
	assertNear(t, "ux", ux, 100) // 400px over 4 units
	assertNear(t, "uy", uy, 100) // 200px over 2 units
}

func TestAxesPlot(t *testing.T) {
	ax := testAxes()
	pts := ax.Plot(func(x float64) float64 { return 0 }, -2, 2, 4)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	// y=0 plots along the screen-space x axis.
	for _, p := range pts {
		assertNear(t, "on axis", p.Y, 150)
	}
	assertVec2(t, "first", pts[0], Vec2{100, 150})
	assertVec2(t, "last", pts[4], Vec2{500, 150})
}

func TestAxesDegenerateRange(t *testing.T) {
	ax := NewAxes(Range{}, Range{}, Rect{Width: 100, Height: 100})
	p := ax.C2P(1, 1)
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		t.Errorf("degenerate ranges must not produce NaN/Inf, got %v", p)
	}
}

func TestAffineInvertSingular(t *testing.T) {
	// A singular matrix inverts to the identity rather than blowing up.
	got := invertAffine([6]float64{0, 0, 0, 0, 5, 6})
	if got != identityAffine {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestAffineMultiplyIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	if got := multiplyAffine(identityAffine, m); got != m {
		t.Errorf("I*m = %v, want %v", got, m)
	}
	if got := multiplyAffine(m, identityAffine); got != m {
		t.Errorf("m*I = %v, want %v", got, m)
	}
}
