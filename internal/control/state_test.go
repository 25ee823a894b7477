package control

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func gestureValue(t detector.GestureType, value float64) detector.Result {
	return detector.Result{Type: t, Confidence: 0.9, Value: value}
}

func TestControlState_AbsoluteMode(t *testing.T) {
	st := &ControlState{Mode: ModeAbsolute, Sensitivity: 1.0, Deadzone: 0.05}

	value, ok := st.apply(gestureValue(detector.GesturePinch, 0.6))
	if !ok {
		t.Fatal("expected the update to be accepted")
	}
	if value != 0.6 {
		t.Errorf("expected value 0.6, got %f", value)
	}
	if st.CurrentValue != 0.6 {
		t.Errorf("expected current value 0.6, got %f", st.CurrentValue)
	}
	if !st.IsActive {
		t.Error("expected state to be active after an accepted update")
	}
	if st.LastGesture == nil {
		t.Error("expected last gesture to be recorded")
	}
}

func TestControlState_DeadzoneSuppressesJitter(t *testing.T) {
	st := &ControlState{Mode: ModeAbsolute, Sensitivity: 1.0, Deadzone: 0.05, CurrentValue: 0.40}

	// 0.43 is inside the deadzone: no event, no mutation.
	if _, ok := st.apply(gestureValue(detector.GesturePinch, 0.43)); ok {
		t.Error("expected the jitter update to be discarded")
	}
	if st.CurrentValue != 0.40 {
		t.Errorf("expected current value unchanged at 0.40, got %f", st.CurrentValue)
	}
	if st.IsActive {
		t.Error("expected state untouched by a discarded update")
	}

	// 0.50 clears the deadzone.
	value, ok := st.apply(gestureValue(detector.GesturePinch, 0.50))
	if !ok {
		t.Fatal("expected the update to be accepted")
	}
	if value != 0.50 {
		t.Errorf("expected value 0.50, got %f", value)
	}
}

func TestControlState_RelativeModeSeedsBaseline(t *testing.T) {
	st := &ControlState{Mode: ModeRelative, Sensitivity: 1.0}

	// The first gesture only establishes the delta baseline.
	if _, ok := st.apply(gestureValue(detector.GesturePinch, 0.5)); ok {
		t.Error("expected the seeding gesture to produce no update")
	}
	if st.LastGesture == nil {
		t.Fatal("expected the seeding gesture to be recorded")
	}
	if st.CurrentValue != 0 {
		t.Errorf("expected current value untouched, got %f", st.CurrentValue)
	}

	value, ok := st.apply(gestureValue(detector.GesturePinch, 0.7))
	if !ok {
		t.Fatal("expected the second gesture to be accepted")
	}
	if math.Abs(value-0.2) > 1e-9 {
		t.Errorf("expected accumulated value 0.2, got %f", value)
	}
}

func TestControlState_RelativeModeScalesBySensitivity(t *testing.T) {
	st := &ControlState{Mode: ModeRelative, Sensitivity: 2.0, CurrentValue: 0.5}
	st.apply(gestureValue(detector.GesturePinch, 0.5))

	value, ok := st.apply(gestureValue(detector.GesturePinch, 0.6))
	if !ok {
		t.Fatal("expected the update to be accepted")
	}
	if math.Abs(value-0.7) > 1e-9 {
		t.Errorf("expected 0.5 + 0.1*2.0 = 0.7, got %f", value)
	}
}

func TestControlState_RelativeModeClampsToUnitRange(t *testing.T) {
	st := &ControlState{Mode: ModeRelative, Sensitivity: 2.0, CurrentValue: 0.9}
	st.apply(gestureValue(detector.GesturePinch, 0.2))

	value, ok := st.apply(gestureValue(detector.GesturePinch, 0.9))
	if !ok {
		t.Fatal("expected the update to be accepted")
	}
	if value != 1.0 {
		t.Errorf("expected value clamped to 1.0, got %f", value)
	}

	st = &ControlState{Mode: ModeRelative, Sensitivity: 2.0, CurrentValue: 0.1}
	st.apply(gestureValue(detector.GesturePinch, 0.9))

	value, ok = st.apply(gestureValue(detector.GesturePinch, 0.2))
	if !ok {
		t.Fatal("expected the update to be accepted")
	}
	if value != 0.0 {
		t.Errorf("expected value clamped to 0.0, got %f", value)
	}
}
