package chalk

// identityAffine is the identity affine matrix.
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = outer * inner.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	return [6]float64{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Axes maps math-space coordinates onto a screen-space rectangle. Math Y
// increases upward; screen Y increases downward, so the mapping flips the
// vertical axis. The zero value is not usable; construct with NewAxes.
type Axes struct {
	XRange Range
	YRange Range
	Screen Rect

	c2p [6]float64
	p2c [6]float64
}

// NewAxes creates an Axes mapping the given math ranges onto the screen
// rectangle. Both ranges must be non-empty; a degenerate range produces an
// identity mapping for that axis.
func NewAxes(xr, yr Range, screen Rect) *Axes {
	sx := 1.0
	if xr.Span() != 0 {
		sx = screen.Width / xr.Span()
	}
	sy := -1.0
	if yr.Span() != 0 {
		sy = -screen.Height / yr.Span()
	}
	c2p := [6]float64{
		sx, 0, 0, sy,
		screen.X - xr.Min*sx,
		screen.Y + screen.Height - yr.Min*sy,
	}
	return &Axes{
		XRange: xr,
		YRange: yr,
		Screen: screen,
		c2p:    c2p,
		p2c:    invertAffine(c2p),
	}
}

// C2P converts math-space coordinates to screen pixels.
func (a *Axes) C2P(x, y float64) Vec2 {
	px, py := transformPoint(a.c2p, x, y)
	return Vec2{px, py}
}

// C2PV is C2P taking a Vec2.
func (a *Axes) C2PV(p Vec2) Vec2 {
	return a.C2P(p.X, p.Y)
}

// P2C converts screen pixels back to math-space coordinates.
func (a *Axes) P2C(px, py float64) Vec2 {
	x, y := transformPoint(a.p2c, px, py)
	return Vec2{x, y}
}

// Origin returns the screen position of the math-space origin.
func (a *Axes) Origin() Vec2 {
	return a.C2P(0, 0)
}

// UnitSize returns the size of one math unit in pixels along each axis.
func (a *Axes) UnitSize() (ux, uy float64) {
	return a.c2p[0], -a.c2p[3]
}

// Plot samples f at n+1 evenly spaced x values over [x0, x1] and returns the
// resulting polyline in screen space.
func (a *Axes) Plot(f Func, x0, x1 float64, n int) []Vec2 {
	samples := WaveSamples(f, x0, x1, n)
	for i, s := range samples {
		samples[i] = a.C2PV(s)
	}
	return samples
}
