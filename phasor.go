package chalk

import "math"

// Tau is one full turn, 2π.
const Tau = 2 * math.Pi

// quarterTurn is π/2, the width of one phase segment.
const quarterTurn = math.Pi / 2

// cardinalEps is the tolerance (in quarter turns) within which an angle
// counts as an exact quarter-turn multiple. Wide enough to absorb the
// float32 rounding of tweened tracker values.
const cardinalEps = 1e-6

// WrapAngle reduces theta into [0, 2π).
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, Tau)
	if theta < 0 {
		theta += Tau
	}
	if theta >= Tau {
		// A tiny negative remainder can round up to exactly 2π.
		theta = 0
	}
	return theta
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// cardinals is the 1 → j → -1 → -j cycle traced by successive quarter turns.
var cardinals = [4]Cardinal{
	{Point: Vec2{1, 0}, Label: "1"},
	{Point: Vec2{0, 1}, Label: "j"},
	{Point: Vec2{-1, 0}, Label: "-1"},
	{Point: Vec2{0, -1}, Label: "-j"},
}

// Cardinal is one of the four axis crossings of the unit circle, with the
// complex value it represents.
type Cardinal struct {
	Point Vec2
	Label string
}

// PhasorPoint returns (cos θ, sin θ): the real and imaginary parts of e^(jθ).
// The result always has magnitude 1, is periodic with period 2π, and lands
// exactly on (±1, 0) or (0, ±1) when theta is a multiple of π/2.
func PhasorPoint(theta float64) Vec2 {
	if c, ok := CardinalSnap(theta); ok {
		return c.Point
	}
	sin, cos := math.Sincos(theta)
	return Vec2{cos, sin}
}

// CardinalSnap reports whether theta is a quarter-turn multiple (within a
// small tolerance) and, if so, returns the exact unit-circle point and its
// complex label.
func CardinalSnap(theta float64) (Cardinal, bool) {
	q := WrapAngle(theta) / quarterTurn
	k := math.Round(q)
	if math.Abs(q-k) > cardinalEps {
		return Cardinal{}, false
	}
	return cardinals[int(k)%4], true
}

// HelixPoint returns the point of the Euler propagation helix at theta:
// the phasor (sin θ, cos θ) in the Y/Z plane advanced along the X axis by
// pitch units per full turn.
func HelixPoint(theta, pitch float64) Vec3 {
	sin, cos := math.Sincos(theta)
	return Vec3{
		X: theta / Tau * pitch,
		Y: sin,
		Z: cos,
	}
}

// HelixPath samples the propagation helix at n+1 evenly spaced angles
// from "from" to "to" inclusive.
func HelixPath(from, to float64, n int, pitch float64) []Vec3 {
	if n < 1 {
		n = 1
	}
	pts := make([]Vec3, n+1)
	step := (to - from) / float64(n)
	for i := range pts {
		pts[i] = HelixPoint(from+float64(i)*step, pitch)
	}
	return pts
}

// WaveSamples evaluates f at n+1 evenly spaced points from "from" to "to"
// inclusive, returning math-space (x, f(x)) pairs. Used to plot the cosine
// and sine waves that grow as θ advances.
func WaveSamples(f Func, from, to float64, n int) []Vec2 {
	if n < 1 {
		n = 1
	}
	pts := make([]Vec2, n+1)
	step := (to - from) / float64(n)
	for i := range pts {
		x := from + float64(i)*step
		pts[i] = Vec2{x, f(x)}
	}
	return pts
}
