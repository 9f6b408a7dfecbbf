// Package chalk is a toolkit for scripted math animations on [Ebitengine].
//
// Chalk provides the numeric evaluators, coordinate mapping, value trackers,
// and stroke primitives needed to replay classic calculus and complex-number
// visualizations: exponential slopes, Euler's number, rotation by the
// imaginary unit, Euler's formula, and its 3D propagation view.
//
// # Evaluators
//
// The heart of the package is a set of small pure functions. They hold no
// state, never fail on their documented domains, and are safe to call from
// any goroutine:
//
//	angle := chalk.SlopeAngle(f, x)        // tangent angle via finite difference
//	v, d := chalk.Exp(2).Eval(x)           // 2^x and ln(2)·2^x
//	p := chalk.PhasorPoint(theta)          // (cos θ, sin θ) on the unit circle
//	c := chalk.PhaseColor(theta)           // four-anchor phase color wheel
//
// # Trackers and timelines
//
// Scenes animate by tweening scalar [Tracker] values and recomputing shapes
// from them each frame, in the manner of [gween]:
//
//	theta := chalk.NewTracker(0)
//	tl := chalk.NewTimeline().
//		Tween(theta, math.Pi/2, 1.2, ease.Linear).
//		Wait(0.5)
//
// Call [Timeline.Update] once per frame. Timelines can also be loaded from
// JSON storyboards via [LoadStoryboard].
//
// # Playback
//
// [Axes] maps math coordinates to screen pixels, the Stroke* helpers draw
// graphs, phasors, dashed construction lines, and arrows, and [Play] runs a
// [Stage] in a window:
//
//	chalk.Play(stage, chalk.Config{
//		Title: "Euler", Width: 960, Height: 540,
//	})
//
// The runnable scenes under examples/ put all of it together.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package chalk
