package detector

import (
	"math"
	"testing"
)

func TestClassifyCrossfader_OptimalDistance(t *testing.T) {
	left, right := CrossfaderHands()
	results := classifyTwoHands(&left, &right, 1, 1)

	r, ok := findType(results, GestureCrossfader)
	if !ok {
		t.Fatal("expected crossfader to be detected")
	}

	// Wrists are exactly the optimal 0.4 apart, so no distance attenuation.
	if math.Abs(r.Confidence-0.95) > epsilon {
		t.Errorf("expected confidence 0.95, got %f", r.Confidence)
	}

	// Fader position is the wrist midpoint x, centered here.
	if math.Abs(r.Value-0.5) > epsilon {
		t.Errorf("expected value 0.5, got %f", r.Value)
	}
}

func TestClassifyCrossfader_SweepsWithMidpoint(t *testing.T) {
	left, right := CrossfaderHands()
	left = ShiftedHand(left, 0.2, 0)
	right = ShiftedHand(right, 0.2, 0)

	results := classifyTwoHands(&left, &right, 1, 1)
	r, ok := findType(results, GestureCrossfader)
	if !ok {
		t.Fatal("expected crossfader to be detected")
	}

	if math.Abs(r.Value-0.7) > epsilon {
		t.Errorf("expected value 0.7 after sliding right, got %f", r.Value)
	}
}

func TestClassifyCrossfader_ConfidenceFallsOffBand(t *testing.T) {
	// Wrists 0.6 apart: 0.2 past optimal, so confidence halves.
	left, right := SpreadHandsPair()
	results := classifyTwoHands(&left, &right, 1, 1)

	r, ok := findType(results, GestureCrossfader)
	if !ok {
		t.Fatal("expected crossfader to be detected at 0.6 apart")
	}

	if math.Abs(r.Confidence-0.95*0.5) > epsilon {
		t.Errorf("expected confidence 0.475, got %f", r.Confidence)
	}
}

func TestClassifyCrossfader_OutsideBand(t *testing.T) {
	// Wrists 0.05 apart, inside the minimum.
	left := ShiftedHand(FistHand(), -0.025, -0.3)
	right := ShiftedHand(FistHand(), 0.025, -0.3)

	results := classifyTwoHands(&left, &right, 1, 1)
	if _, ok := findType(results, GestureCrossfader); ok {
		t.Error("expected no crossfader when wrists are 0.05 apart")
	}

	// Wrists 0.8 apart, beyond the maximum.
	left = ShiftedHand(FistHand(), -0.4, -0.3)
	right = ShiftedHand(FistHand(), 0.4, -0.3)

	results = classifyTwoHands(&left, &right, 1, 1)
	if _, ok := findType(results, GestureCrossfader); ok {
		t.Error("expected no crossfader when wrists are 0.8 apart")
	}
}

func TestClassifySpreadHands(t *testing.T) {
	left, right := SpreadHandsPair()
	results := classifyTwoHands(&left, &right, 1, 1)

	r, ok := findType(results, GestureSpreadHands)
	if !ok {
		t.Fatal("expected spread hands to be detected")
	}

	// (0.6 - 0.3) / 0.4
	if math.Abs(r.Value-0.75) > epsilon {
		t.Errorf("expected value 0.75, got %f", r.Value)
	}

	if math.Abs(r.Confidence-0.95*spreadConfidence) > epsilon {
		t.Errorf("expected confidence %f, got %f", 0.95*spreadConfidence, r.Confidence)
	}
}

func TestClassifySpreadHands_SaturatesAtRange(t *testing.T) {
	left := ShiftedHand(FistHand(), -0.4, -0.3)
	right := ShiftedHand(FistHand(), 0.4, -0.3)

	results := classifyTwoHands(&left, &right, 1, 1)
	r, ok := findType(results, GestureSpreadHands)
	if !ok {
		t.Fatal("expected spread hands to be detected at 0.8 apart")
	}
	if math.Abs(r.Value-1.0) > epsilon {
		t.Errorf("expected value to clamp at 1.0, got %f", r.Value)
	}
}

func TestClassifyClap(t *testing.T) {
	left, right := ClapHands()
	results := classifyTwoHands(&left, &right, 1, 1)

	r, ok := findType(results, GestureClap)
	if !ok {
		t.Fatal("expected clap to be detected")
	}

	if r.Value != 1.0 {
		t.Errorf("expected value 1.0, got %f", r.Value)
	}

	if math.Abs(r.Confidence-0.95*clapConfidence) > epsilon {
		t.Errorf("expected confidence %f, got %f", 0.95*clapConfidence, r.Confidence)
	}
}

func TestClassifyClap_PalmsApart(t *testing.T) {
	left, right := CrossfaderHands()
	results := classifyTwoHands(&left, &right, 1, 1)

	if _, ok := findType(results, GestureClap); ok {
		t.Error("expected no clap with palms 0.4 apart")
	}
}

func TestClassifyDualControl(t *testing.T) {
	left, right := DualControlHands()
	results := classifyTwoHands(&left, &right, 1, 1)

	r, ok := findType(results, GestureDualControl)
	if !ok {
		t.Fatal("expected dual control to be detected")
	}

	// Both wrists at y 0.5.
	if math.Abs(r.Value-0.5) > epsilon {
		t.Errorf("expected value 0.5, got %f", r.Value)
	}

	// Confidence is the weaker of the two open-palm detections.
	if math.Abs(r.Confidence-0.95*openPalmConfidence) > epsilon {
		t.Errorf("expected confidence %f, got %f", 0.95*openPalmConfidence, r.Confidence)
	}
}

func TestClassifyDualControl_RequiresOpenPalms(t *testing.T) {
	left, right := SpreadHandsPair()
	results := classifyTwoHands(&left, &right, 1, 1)

	if _, ok := findType(results, GestureDualControl); ok {
		t.Error("expected no dual control from a pair of fists")
	}
}

func TestClassifyTwoHands_NotMutuallyExclusive(t *testing.T) {
	// 0.6 apart satisfies both the crossfader band and the spread threshold.
	left, right := SpreadHandsPair()
	results := classifyTwoHands(&left, &right, 1, 1)

	if _, ok := findType(results, GestureCrossfader); !ok {
		t.Error("expected crossfader in the result set")
	}
	if _, ok := findType(results, GestureSpreadHands); !ok {
		t.Error("expected spread hands in the result set")
	}
}

func TestClassifyTwoHands_AspectCorrectedDistance(t *testing.T) {
	// Vertically stacked wrists on a 16:9 frame: the raw distance of 0.5
	// shrinks to 0.28 once corrected, keeping the pair inside the
	// crossfader band.
	left := ShiftedHand(OpenPalmHand(), 0, -0.55)
	right := ShiftedHand(OpenPalmHand(), 0, -0.05)

	results := classifyTwoHands(&left, &right, 1600, 900)
	if _, ok := findType(results, GestureCrossfader); !ok {
		t.Error("expected crossfader on the aspect-corrected frame")
	}

	// On a square frame the same pair keeps its raw 0.5 separation and
	// reads as a spread as well.
	results = classifyTwoHands(&left, &right, 720, 720)
	r, ok := findType(results, GestureSpreadHands)
	if !ok {
		t.Fatal("expected spread hands on the square frame")
	}
	if math.Abs(r.Value-0.5) > epsilon {
		t.Errorf("expected spread value 0.5, got %f", r.Value)
	}
}
