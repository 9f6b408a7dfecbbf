package chalk

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Immediate-mode stroke helpers over ebiten's vector package. All positions
// are screen-space pixels; colors are chalk Colors (alpha respected).

// StrokeSegment draws a straight line from a to b.
func StrokeSegment(dst *ebiten.Image, a, b Vec2, width float32, c Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c.toRGBA(), true)
}

// StrokePolyline draws the open polyline through pts.
func StrokePolyline(dst *ebiten.Image, pts []Vec2, width float32, c Color) {
	for i := 1; i < len(pts); i++ {
		StrokeSegment(dst, pts[i-1], pts[i], width, c)
	}
}

// StrokeDashed draws a dashed line from a to b. dashLen is the length of
// each dash in pixels and duty the fraction of each dash period that is
// drawn, in (0, 1]. The pattern starts with a dash at a.
func StrokeDashed(dst *ebiten.Image, a, b Vec2, width float32, dashLen, duty float64, c Color) {
	for _, seg := range dashSegments(a, b, dashLen, duty) {
		StrokeSegment(dst, seg[0], seg[1], width, c)
	}
}

// dashSegments splits the segment a→b into dash intervals. The final dash is
// clipped at b.
func dashSegments(a, b Vec2, dashLen, duty float64) [][2]Vec2 {
	d := b.Sub(a)
	total := math.Hypot(d.X, d.Y)
	if total == 0 || dashLen <= 0 {
		return nil
	}
	if duty <= 0 || duty > 1 {
		duty = 1
	}
	period := dashLen / duty
	dir := d.Scale(1 / total)

	var segs [][2]Vec2
	for start := 0.0; start < total; start += period {
		end := start + dashLen
		if end > total {
			end = total
		}
		segs = append(segs, [2]Vec2{
			a.Add(dir.Scale(start)),
			a.Add(dir.Scale(end)),
		})
	}
	return segs
}

// FillDot draws a filled circle of radius r centered at p.
func FillDot(dst *ebiten.Image, p Vec2, r float32, c Color) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), r, c.toRGBA(), true)
}

// StrokeCircleAt draws a circle outline of radius r centered at p.
func StrokeCircleAt(dst *ebiten.Image, p Vec2, r, width float32, c Color) {
	vector.StrokeCircle(dst, float32(p.X), float32(p.Y), r, width, c.toRGBA(), true)
}

// StrokeArrow draws a line from a to b with an arrowhead at b. tipLen is the
// arrowhead side length in pixels.
func StrokeArrow(dst *ebiten.Image, a, b Vec2, width float32, tipLen float64, c Color) {
	StrokeSegment(dst, a, b, width, c)
	left, right := arrowHead(a, b, tipLen)
	StrokeSegment(dst, b, left, width, c)
	StrokeSegment(dst, b, right, width, c)
}

// arrowHeadAngle is the half-angle of the arrowhead wedge.
const arrowHeadAngle = math.Pi / 7

// arrowHead returns the two barb endpoints of an arrowhead at b pointing
// away from a. A zero-length arrow gets a degenerate head at b.
func arrowHead(a, b Vec2, tipLen float64) (left, right Vec2) {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return b, b
	}
	base := math.Atan2(d.Y, d.X) + math.Pi // point back toward a
	sinL, cosL := math.Sincos(base - arrowHeadAngle)
	sinR, cosR := math.Sincos(base + arrowHeadAngle)
	left = Vec2{b.X + cosL*tipLen, b.Y + sinL*tipLen}
	right = Vec2{b.X + cosR*tipLen, b.Y + sinR*tipLen}
	return left, right
}

// StrokeGraph plots f over [x0, x1] on the axes with n line segments.
func StrokeGraph(dst *ebiten.Image, ax *Axes, f Func, x0, x1 float64, n int, width float32, c Color) {
	StrokePolyline(dst, ax.Plot(f, x0, x1, n), width, c)
}

// StrokeAxes draws the x and y axis lines of ax across its screen rectangle.
func StrokeAxes(dst *ebiten.Image, ax *Axes, width float32, c Color) {
	o := ax.Origin()
	r := ax.Screen
	if o.Y >= r.Y && o.Y <= r.Y+r.Height {
		StrokeSegment(dst, Vec2{r.X, o.Y}, Vec2{r.X + r.Width, o.Y}, width, c)
	}
	if o.X >= r.X && o.X <= r.X+r.Width {
		StrokeSegment(dst, Vec2{o.X, r.Y}, Vec2{o.X, r.Y + r.Height}, width, c)
	}
}
