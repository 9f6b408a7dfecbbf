package chalk

// PhaseWheel maps a phase angle to a color by interpolating between four
// anchor colors, one per quadrant of the unit circle. The mapping is
// continuous: each quarter-turn segment blends linearly from its anchor to
// the next, segment boundaries hit the anchors exactly, and the fourth
// segment wraps back to the first anchor so there is no seam at 2π.
type PhaseWheel struct {
	Anchors [4]Color
}

// DefaultPhaseWheel cycles blue → green → red → purple, the palette the
// rotation scenes use to tint the phasor as it sweeps the plane.
var DefaultPhaseWheel = PhaseWheel{
	Anchors: [4]Color{ColorBlue, ColorGreen, ColorRed, ColorPurple},
}

// At returns the color for theta. The angle is first reduced into [0, 2π);
// any real value is accepted.
func (w PhaseWheel) At(theta float64) Color {
	t := WrapAngle(theta)
	seg := int(t / quarterTurn)
	if seg > 3 {
		seg = 3 // guard against t rounding up to exactly 2π
	}
	frac := (t - float64(seg)*quarterTurn) / quarterTurn
	return w.Anchors[seg].Lerp(w.Anchors[(seg+1)%4], frac)
}

// PhaseColor returns DefaultPhaseWheel.At(theta).
func PhaseColor(theta float64) Color {
	return DefaultPhaseWheel.At(theta)
}
