package chalk

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is converted for rendering.
type Color struct {
	R, G, B, A float64
}

// hexColor builds an opaque Color from a 0xRRGGBB value.
func hexColor(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// The default palette, matching the chalkboard colors used throughout the
// example scenes. Blue, green, red, and purple are also the default phase
// wheel anchors.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlue   = hexColor(0x58c4dd)
	ColorGreen  = hexColor(0x83c167)
	ColorRed    = hexColor(0xfc6255)
	ColorPurple = hexColor(0x9a72ac)
	ColorYellow = hexColor(0xffff00)
	ColorOrange = hexColor(0xff862f)
	ColorGold   = hexColor(0xf0ac5f)
	ColorGray   = hexColor(0x888888)
)

// Lerp linearly interpolates between c and other, channel by channel.
// t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts the color to a premultiplied 8-bit RGBA value for rendering.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and directions throughout
// the API. Depending on context it holds math-space or screen-space
// coordinates; Axes converts between the two.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Vec3 is a 3D point used by the helix and orbit-camera helpers. Axis
// convention follows the propagation scene: X runs along the angle axis,
// Y is the imaginary (sine) axis, Z is the real (cosine) axis.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned screen-space rectangle. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a min/max interval in math space.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}
