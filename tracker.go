package chalk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tracker is an animatable scalar. Shapes are recomputed from tracker values
// each frame, so tweening a tracker animates everything derived from it.
// Trackers are not safe for concurrent mutation; drive them from the game
// loop only.
type Tracker struct {
	value float64
	tween *gween.Tween
}

// NewTracker creates a Tracker holding v.
func NewTracker(v float64) *Tracker {
	return &Tracker{value: v}
}

// Value returns the current value.
func (t *Tracker) Value() float64 {
	return t.value
}

// Set jumps the tracker to v, cancelling any active tween.
func (t *Tracker) Set(v float64) {
	t.value = v
	t.tween = nil
}

// TweenTo starts animating the tracker to the target value over the given
// duration in seconds. Any previous tween is replaced.
func (t *Tracker) TweenTo(to float64, duration float32, fn ease.TweenFunc) {
	t.tween = gween.New(float32(t.value), float32(to), duration, fn)
}

// Update advances the active tween by dt seconds. It reports whether the
// tracker is idle (no tween, or the tween just finished).
func (t *Tracker) Update(dt float32) bool {
	if t.tween == nil {
		return true
	}
	val, finished := t.tween.Update(dt)
	t.value = float64(val)
	if finished {
		t.tween = nil
	}
	return finished
}

// segmentKind discriminates Timeline segment types.
type segmentKind uint8

const (
	segTween segmentKind = iota
	segWait
	segCall
)

// tweenEntry is one tracker animation inside a tween segment.
type tweenEntry struct {
	tracker  *Tracker
	to       float64
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
	done     bool
}

// timelineSegment is one sequential step of a Timeline.
type timelineSegment struct {
	kind    segmentKind
	entries []tweenEntry
	wait    float32
	fn      func()
}

// Timeline plays an ordered sequence of segments: tracker tweens (possibly
// several at once), waits, and callbacks. Build one with the chained
// Tween/Also/Wait/Call methods and advance it with Update once per frame.
//
// There is no global animation manager — callers own the update cadence.
type Timeline struct {
	segments []timelineSegment
	cursor   int
	waitLeft float32
	entered  bool
	Done     bool
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Tween appends a segment animating tracker to the target value over
// duration seconds.
func (tl *Timeline) Tween(tracker *Tracker, to float64, duration float32, fn ease.TweenFunc) *Timeline {
	tl.segments = append(tl.segments, timelineSegment{
		kind:    segTween,
		entries: []tweenEntry{{tracker: tracker, to: to, duration: duration, easing: fn}},
	})
	return tl
}

// Also adds another tracker animation to the most recent Tween segment, so
// both play simultaneously. The segment finishes when its longest animation
// does. Also panics if the last segment is not a tween.
func (tl *Timeline) Also(tracker *Tracker, to float64, duration float32, fn ease.TweenFunc) *Timeline {
	if len(tl.segments) == 0 || tl.segments[len(tl.segments)-1].kind != segTween {
		panic("chalk: Timeline.Also must follow Tween")
	}
	seg := &tl.segments[len(tl.segments)-1]
	seg.entries = append(seg.entries, tweenEntry{tracker: tracker, to: to, duration: duration, easing: fn})
	return tl
}

// Wait appends a pause of the given duration in seconds.
func (tl *Timeline) Wait(seconds float32) *Timeline {
	tl.segments = append(tl.segments, timelineSegment{kind: segWait, wait: seconds})
	return tl
}

// Call appends a callback executed once when the timeline reaches it.
func (tl *Timeline) Call(fn func()) *Timeline {
	tl.segments = append(tl.segments, timelineSegment{kind: segCall, fn: fn})
	return tl
}

// Reset rewinds the timeline to its first segment. Tracker values are left
// as they are; tweens restart from the current values when re-entered.
func (tl *Timeline) Reset() {
	tl.cursor = 0
	tl.waitLeft = 0
	tl.entered = false
	tl.Done = false
	for i := range tl.segments {
		for j := range tl.segments[i].entries {
			tl.segments[i].entries[j].tween = nil
			tl.segments[i].entries[j].done = false
		}
	}
}

// Update advances the timeline by dt seconds, executing at most one segment
// transition per call.
func (tl *Timeline) Update(dt float32) {
	if tl.Done {
		return
	}
	if tl.cursor >= len(tl.segments) {
		tl.Done = true
		return
	}

	seg := &tl.segments[tl.cursor]
	if !tl.entered {
		tl.enter(seg)
	}

	switch seg.kind {
	case segTween:
		allDone := true
		for i := range seg.entries {
			e := &seg.entries[i]
			if e.done {
				continue
			}
			val, finished := e.tween.Update(dt)
			e.tracker.value = float64(val)
			if finished {
				e.done = true
			} else {
				allDone = false
			}
		}
		if allDone {
			tl.advance()
		}
	case segWait:
		tl.waitLeft -= dt
		if tl.waitLeft <= 0 {
			tl.advance()
		}
	case segCall:
		// Executed on entry; move on immediately.
		tl.advance()
	}
}

// enter initializes a segment the first frame it becomes current.
func (tl *Timeline) enter(seg *timelineSegment) {
	tl.entered = true
	switch seg.kind {
	case segTween:
		for i := range seg.entries {
			e := &seg.entries[i]
			e.tween = gween.New(float32(e.tracker.value), float32(e.to), e.duration, e.easing)
			e.done = false
		}
	case segWait:
		tl.waitLeft = seg.wait
	case segCall:
		seg.fn()
	}
}

// advance moves to the next segment.
func (tl *Timeline) advance() {
	tl.cursor++
	tl.entered = false
	if tl.cursor >= len(tl.segments) {
		tl.Done = true
	}
}
