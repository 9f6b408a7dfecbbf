package chalk

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"
)

// storyboardStep represents a single action in a storyboard script.
type storyboardStep struct {
	Action   string  `json:"action"`
	Tracker  string  `json:"tracker,omitempty"`
	To       float64 `json:"to,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Ease     string  `json:"ease,omitempty"`
	Seconds  float32 `json:"seconds,omitempty"`
	Label    string  `json:"label,omitempty"`
	With     []struct {
		Tracker  string  `json:"tracker"`
		To       float64 `json:"to"`
		Duration float32 `json:"duration,omitempty"`
		Ease     string  `json:"ease,omitempty"`
	} `json:"with,omitempty"`
}

// storyboardScript is the top-level JSON structure for a storyboard.
type storyboardScript struct {
	Steps []storyboardStep `json:"steps"`
}

// easings maps storyboard ease names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
}

// LoadStoryboard parses a JSON storyboard and builds a Timeline over the
// named trackers and callbacks.
//
// Step actions:
//
//	{"action": "tween", "tracker": "theta", "to": 6.283, "duration": 2.5, "ease": "linear"}
//	{"action": "wait", "seconds": 1}
//	{"action": "call", "label": "flash"}
//
// A tween step may carry a "with" list of additional tracker animations that
// play simultaneously. The ease name defaults to "linear" when omitted.
// Referencing an unknown tracker, callback label, or ease name is an error.
func LoadStoryboard(jsonData []byte, trackers map[string]*Tracker, calls map[string]func()) (*Timeline, error) {
	var script storyboardScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse storyboard: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse storyboard: no steps")
	}

	tl := NewTimeline()
	for i, st := range script.Steps {
		switch st.Action {
		case "tween":
			tr, fn, err := resolveTween(trackers, st.Tracker, st.Duration, st.Ease)
			if err != nil {
				return nil, fmt.Errorf("storyboard step %d: %w", i, err)
			}
			tl.Tween(tr, st.To, st.Duration, fn)
			for _, w := range st.With {
				dur := w.Duration
				if dur == 0 {
					dur = st.Duration
				}
				wtr, wfn, err := resolveTween(trackers, w.Tracker, dur, w.Ease)
				if err != nil {
					return nil, fmt.Errorf("storyboard step %d: %w", i, err)
				}
				tl.Also(wtr, w.To, dur, wfn)
			}
		case "wait":
			if st.Seconds <= 0 {
				return nil, fmt.Errorf("storyboard step %d: wait needs positive seconds", i)
			}
			tl.Wait(st.Seconds)
		case "call":
			fn, ok := calls[st.Label]
			if !ok {
				return nil, fmt.Errorf("storyboard step %d: unknown callback %q", i, st.Label)
			}
			tl.Call(fn)
		default:
			return nil, fmt.Errorf("storyboard step %d: unknown action %q", i, st.Action)
		}
	}
	return tl, nil
}

// resolveTween validates one tween reference and returns its tracker and
// easing function.
func resolveTween(trackers map[string]*Tracker, name string, duration float32, easeName string) (*Tracker, ease.TweenFunc, error) {
	tr, ok := trackers[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown tracker %q", name)
	}
	if duration <= 0 {
		return nil, nil, fmt.Errorf("tween of %q needs positive duration", name)
	}
	if easeName == "" {
		easeName = "linear"
	}
	fn, ok := easings[easeName]
	if !ok {
		return nil, nil, fmt.Errorf("unknown ease %q", easeName)
	}
	return tr, fn, nil
}
