package chalk

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTrackerSetAndValue(t *testing.T) {
	tr := NewTracker(2.5)
	assertNear(t, "initial", tr.Value(), 2.5)

	tr.Set(-1)
	assertNear(t, "after set", tr.Value(), -1)
}

func TestTrackerTweenTo(t *testing.T) {
	tr := NewTracker(0)
	tr.TweenTo(10, 2, ease.Linear)

	if done := tr.Update(1); done {
		t.Error("tween should not be done at the midpoint")
	}
	assertNearTol(t, "midpoint", tr.Value(), 5, 1e-6)

	if done := tr.Update(1); !done {
		t.Error("tween should finish after the full duration")
	}
	assertNearTol(t, "end", tr.Value(), 10, 1e-6)

	// An idle tracker reports done and keeps its value.
	if done := tr.Update(1); !done {
		t.Error("idle tracker should report done")
	}
	assertNearTol(t, "stable", tr.Value(), 10, 1e-6)
}

func TestTrackerSetCancelsTween(t *testing.T) {
	tr := NewTracker(0)
	tr.TweenTo(10, 1, ease.Linear)
	tr.Set(3)
	tr.Update(1)
	assertNear(t, "set wins", tr.Value(), 3)
}

func TestTimelineSequencing(t *testing.T) {
	x := NewTracker(0)
	var called bool
	tl := NewTimeline().
		Tween(x, 4, 1, ease.Linear).
		Wait(0.5).
		Call(func() { called = true })

	// Tween segment: two half-second steps.
	tl.Update(0.5)
	assertNearTol(t, "mid tween", x.Value(), 2, 1e-6)
	if called {
		t.Fatal("callback ran before its segment")
	}
	tl.Update(0.5)
	assertNearTol(t, "tween done", x.Value(), 4, 1e-6)

	// Wait segment.
	tl.Update(0.25)
	if called || tl.Done {
		t.Fatal("still waiting")
	}
	tl.Update(0.25)

	// Call segment executes on entry.
	tl.Update(0.01)
	if !called {
		t.Fatal("callback did not run")
	}
	if !tl.Done {
		t.Error("timeline should be done after the last segment")
	}
}

func TestTimelineAlso(t *testing.T) {
	a := NewTracker(0)
	b := NewTracker(10)
	tl := NewTimeline().
		Tween(a, 1, 1, ease.Linear).
		Also(b, 0, 2, ease.Linear)

	tl.Update(1)
	assertNearTol(t, "a done", a.Value(), 1, 1e-6)
	assertNearTol(t, "b halfway", b.Value(), 5, 1e-6)
	if tl.Done {
		t.Fatal("segment waits for its longest animation")
	}

	tl.Update(1)
	assertNearTol(t, "b done", b.Value(), 0, 1e-6)
	if !tl.Done {
		t.Error("timeline should finish with the longest tween")
	}
}

func TestTimelineAlsoRequiresTween(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Also after Wait should panic")
		}
	}()
	NewTimeline().Wait(1).Also(NewTracker(0), 1, 1, ease.Linear)
}

func TestTimelineReset(t *testing.T) {
	x := NewTracker(0)
	tl := NewTimeline().Tween(x, 2, 1, ease.Linear)

	tl.Update(1)
	tl.Update(0.01)
	if !tl.Done {
		t.Fatal("timeline should be done")
	}

	tl.Reset()
	if tl.Done {
		t.Fatal("reset should clear Done")
	}
	// Tweens restart from the tracker's current value.
	x.Set(10)
	tl.Update(0.5)
	assertNearTol(t, "restarted midpoint", x.Value(), 6, 1e-6)
}

func TestTimelineEmpty(t *testing.T) {
	tl := NewTimeline()
	tl.Update(0.1)
	if !tl.Done {
		t.Error("empty timeline is immediately done")
	}
}
