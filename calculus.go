package chalk

import "math"

// Func is a single-variable real function.
type Func func(x float64) float64

// slopeStep is the forward finite-difference step used by Slope.
const slopeStep = 1e-6

// Slope approximates the derivative of f at x by forward finite difference.
// The caller must ensure f is defined and finite on [x, x+1e-6]; a NaN or
// infinite function value propagates unchanged.
func Slope(f Func, x float64) float64 {
	return (f(x+slopeStep) - f(x)) / slopeStep
}

// SlopeAngle returns the angle in (-π/2, π/2) whose tangent equals the
// derivative of f at x. This is the inclination of the tangent line drawn
// at (x, f(x)).
func SlopeAngle(f Func, x float64) float64 {
	return math.Atan(Slope(f, x))
}

// Exponential evaluates f(x) = Base^x and its derivative ln(Base)·Base^x.
// The base must be positive and not 1; out-of-domain bases produce NaN per
// the underlying math package rather than an error.
//
// At Base == math.E the value equals the derivative for every x, which is
// the fact the Euler's-number scenes exist to demonstrate.
type Exponential struct {
	Base float64
}

// Exp returns an Exponential with the given base.
func Exp(base float64) Exponential {
	return Exponential{Base: base}
}

// Value returns Base^x.
func (e Exponential) Value(x float64) float64 {
	return math.Pow(e.Base, x)
}

// Derivative returns ln(Base)·Base^x, the analytic derivative of Base^x.
func (e Exponential) Derivative(x float64) float64 {
	return math.Log(e.Base) * math.Pow(e.Base, x)
}

// Eval returns Base^x and its derivative in one call.
func (e Exponential) Eval(x float64) (value, derivative float64) {
	value = math.Pow(e.Base, x)
	return value, math.Log(e.Base) * value
}

// GrowthRate returns ln(Base), the constant of proportionality between the
// function and its derivative. It is 1 exactly when Base is e.
func (e Exponential) GrowthRate() float64 {
	return math.Log(e.Base)
}

// Func returns e.Value as a Func, for use with Slope, SlopeAngle, and the
// plotting helpers.
func (e Exponential) Func() Func {
	return e.Value
}

// TangentSegment returns the endpoints of the tangent line to f at x,
// centered on (x, f(x)) with the given total length. Both points are in
// math space.
func TangentSegment(f Func, x, length float64) (start, end Vec2) {
	angle := SlopeAngle(f, x)
	sin, cos := math.Sincos(angle)
	half := length / 2
	dx := half * cos
	dy := half * sin
	y := f(x)
	return Vec2{x - dx, y - dy}, Vec2{x + dx, y + dy}
}

// SlopeTriangle is the right triangle drawn under a tangent line over a unit
// run: the horizontal leg from Base to Corner and the vertical leg from
// Corner to Tip. All points are in math space.
type SlopeTriangle struct {
	Base   Vec2 // (x, f(x)), the point of tangency
	Corner Vec2 // (x+1, f(x)), one unit to the right
	Tip    Vec2 // (x+1, f(x) + f'(x)), on the tangent line
}

// NewSlopeTriangle builds the slope triangle for f at x. Because the run is
// exactly 1, the rise equals the derivative of f at x.
func NewSlopeTriangle(f Func, x float64) SlopeTriangle {
	y := f(x)
	rise := math.Tan(SlopeAngle(f, x))
	return SlopeTriangle{
		Base:   Vec2{x, y},
		Corner: Vec2{x + 1, y},
		Tip:    Vec2{x + 1, y + rise},
	}
}

// Rise returns the signed length of the vertical leg.
func (t SlopeTriangle) Rise() float64 {
	return t.Tip.Y - t.Corner.Y
}

// Run returns the length of the horizontal leg. It is always 1.
func (t SlopeTriangle) Run() float64 {
	return t.Corner.X - t.Base.X
}
