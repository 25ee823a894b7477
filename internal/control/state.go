package control

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// ControlMode selects how gesture values drive a control.
type ControlMode string

const (
	// ModeAbsolute maps the gesture value directly onto the control value.
	ModeAbsolute ControlMode = "absolute"
	// ModeRelative accumulates sensitivity-scaled deltas between
	// consecutive gesture values.
	ModeRelative ControlMode = "relative"
)

// Bounds for the per-mapping tuning knobs. Out-of-range input is clamped,
// never rejected.
const (
	MinSensitivity = 0.1
	MaxSensitivity = 2.0
	MinDeadzone    = 0.0
	MaxDeadzone    = 0.2
)

// ControlState is the per-mapping value holder. One exists for every
// mapping in the active profile; activating another profile rebuilds them
// all.
type ControlState struct {
	IsActive     bool             `json:"isActive"`
	CurrentValue float64          `json:"currentValue"`
	Mode         ControlMode      `json:"mode"`
	Sensitivity  float64          `json:"sensitivity"`
	Deadzone     float64          `json:"deadzone"`
	LastGesture  *detector.Result `json:"lastGesture,omitempty"`
}

// apply folds one detection result into the state. It returns the accepted
// final value and true, or false when the update is discarded. A discarded
// update leaves the state untouched, except that relative mode records the
// first gesture it sees so the next one has a delta baseline.
func (s *ControlState) apply(r detector.Result) (float64, bool) {
	final := r.Value
	if s.Mode == ModeRelative {
		if s.LastGesture == nil {
			s.LastGesture = &r
			return 0, false
		}
		delta := r.Value - s.LastGesture.Value
		final = geom.Clamp01(s.CurrentValue + delta*s.Sensitivity)
	}

	// Deadzone filter: jitter below the threshold produces no event and no
	// state mutation.
	if math.Abs(final-s.CurrentValue) < s.Deadzone {
		return 0, false
	}

	s.CurrentValue = final
	s.LastGesture = &r
	s.IsActive = true
	return final, true
}

// ControlEvent is one control change delivered to the audio engine
// collaborator.
type ControlEvent struct {
	MappingID   string          `json:"mappingId"`
	ControlType ControlType     `json:"controlType"`
	TargetStem  Stem            `json:"targetStem"`
	Value       float64         `json:"value"`
	Gesture     detector.Result `json:"gesture"`
	Channel     uint32          `json:"channel"`
}
