package control

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// FeedbackState is the aggregated per-tick snapshot for UI and telemetry
// observers. It is rebuilt from scratch every tick, never merged, and is
// read-only to observers.
type FeedbackState struct {
	ActiveGestures []detector.Result  `json:"activeGestures"`
	ActiveMappings []GestureMapping   `json:"activeMappings"`
	StemIndicators map[Stem]bool      `json:"stemIndicators"`
	ControlValues  map[string]float64 `json:"controlValues"`
	Confidence     float64            `json:"confidence"`
	LatencyMs      float64            `json:"latency"`
}

// buildFeedback recomputes the snapshot from this tick's surfaced results.
// Caller holds the engine lock.
func (e *Engine) buildFeedback(results []detector.Result, latency time.Duration) FeedbackState {
	fb := FeedbackState{
		ActiveGestures: append([]detector.Result(nil), results...),
		StemIndicators: make(map[Stem]bool),
		ControlValues:  make(map[string]float64, len(e.states)),
		LatencyMs:      float64(latency) / float64(time.Millisecond),
	}

	if len(results) > 0 {
		var sum float64
		for _, r := range results {
			sum += r.Confidence
		}
		fb.Confidence = sum / float64(len(results))
	}

	seen := make(map[detector.GestureType]bool, len(results))
	for _, r := range results {
		seen[r.Type] = true
	}
	if active := e.profiles[e.activeID]; active != nil {
		for _, m := range active.Mappings {
			if seen[m.GestureType] {
				fb.ActiveMappings = append(fb.ActiveMappings, m)
				fb.StemIndicators[m.TargetStem] = true
			}
		}
	}

	for id, st := range e.states {
		fb.ControlValues[id] = st.CurrentValue
	}
	return fb
}

// clone deep-copies the snapshot so observers cannot mutate engine state
// through the maps.
func (f FeedbackState) clone() FeedbackState {
	out := f
	out.ActiveGestures = append([]detector.Result(nil), f.ActiveGestures...)
	out.ActiveMappings = append([]GestureMapping(nil), f.ActiveMappings...)
	out.StemIndicators = make(map[Stem]bool, len(f.StemIndicators))
	for k, v := range f.StemIndicators {
		out.StemIndicators[k] = v
	}
	out.ControlValues = make(map[string]float64, len(f.ControlValues))
	for k, v := range f.ControlValues {
		out.ControlValues[k] = v
	}
	return out
}
