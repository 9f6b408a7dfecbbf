package chalk

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// orbitAnim holds active move-to tweens for the orbit angles.
type orbitAnim struct {
	tweenPhi   *gween.Tween
	tweenTheta *gween.Tween
	donePhi    bool
	doneTheta  bool
}

// Orbit is a camera orbiting the origin, described by spherical angles, that
// projects 3D points onto the screen. Phi is the polar angle measured from
// the +Z axis (0 looks straight down the Z axis); Theta is the azimuth in
// the X/Y plane.
//
// With Distance <= 0 the projection is orthographic; a positive Distance
// applies perspective foreshortening with the camera that many math units
// from the origin.
type Orbit struct {
	Phi, Theta float64
	Distance   float64

	// Scale is pixels per math unit; Center is the screen point the origin
	// projects to.
	Scale  float64
	Center Vec2

	move *orbitAnim
}

// NewOrbit creates an orbit camera with the given angles, projecting at
// scale pixels per unit around the screen center.
func NewOrbit(phi, theta, scale float64, center Vec2) *Orbit {
	return &Orbit{Phi: phi, Theta: theta, Scale: scale, Center: center}
}

// Project maps a 3D math-space point to screen pixels under the current
// orientation.
func (o *Orbit) Project(p Vec3) Vec2 {
	sinT, cosT := math.Sincos(o.Theta)
	sinP, cosP := math.Sincos(o.Phi)

	// View-plane basis: right vector and up vector for the orientation.
	vx := -p.X*sinT + p.Y*cosT
	vy := -p.X*cosP*cosT - p.Y*cosP*sinT + p.Z*sinP

	k := 1.0
	if o.Distance > 0 {
		// Depth along the view direction, toward the camera.
		depth := p.X*sinP*cosT + p.Y*sinP*sinT + p.Z*cosP
		denom := o.Distance - depth
		if denom > 1e-6 {
			k = o.Distance / denom
		}
	}

	return Vec2{
		X: o.Center.X + vx*k*o.Scale,
		Y: o.Center.Y - vy*k*o.Scale,
	}
}

// ProjectPath projects a 3D polyline to screen space.
func (o *Orbit) ProjectPath(pts []Vec3) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = o.Project(p)
	}
	return out
}

// MoveTo animates the orbit to the target angles over the given duration in
// seconds. Any in-flight move is replaced.
func (o *Orbit) MoveTo(phi, theta float64, duration float32, fn ease.TweenFunc) {
	o.move = &orbitAnim{
		tweenPhi:   gween.New(float32(o.Phi), float32(phi), duration, fn),
		tweenTheta: gween.New(float32(o.Theta), float32(theta), duration, fn),
	}
}

// Moving reports whether a MoveTo animation is in progress.
func (o *Orbit) Moving() bool {
	return o.move != nil
}

// Update advances an active MoveTo animation by dt seconds.
func (o *Orbit) Update(dt float32) {
	if o.move == nil {
		return
	}
	if !o.move.donePhi {
		val, finished := o.move.tweenPhi.Update(dt)
		o.Phi = float64(val)
		o.move.donePhi = finished
	}
	if !o.move.doneTheta {
		val, finished := o.move.tweenTheta.Update(dt)
		o.Theta = float64(val)
		o.move.doneTheta = finished
	}
	if o.move.donePhi && o.move.doneTheta {
		o.move = nil
	}
}
