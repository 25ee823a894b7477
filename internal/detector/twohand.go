package detector

import (
	"math"

	"github.com/ayusman/mudra/internal/geom"
)

// Geometric thresholds for the two-hand classifiers.
const (
	crossfaderMinDist     = 0.1
	crossfaderMaxDist     = 0.7
	crossfaderOptimalDist = 0.4
	spreadMinDist         = 0.3
	spreadRange           = 0.4
	clapMaxPalmDist       = 0.05
)

// Confidence multipliers for the two-hand classifiers.
const (
	spreadConfidence = 0.8
	clapConfidence   = 0.9
)

// classifyTwoHands runs every two-hand classifier. The classifiers are
// evaluated independently and may all emit in the same tick; a wrist
// distance can legitimately satisfy both the crossfader band and the spread
// threshold.
func classifyTwoHands(left, right *HandFrame, frameWidth, frameHeight float64) []Result {
	wristDist := geom.NormalizedDistance(
		left.Landmarks[Wrist], right.Landmarks[Wrist], frameWidth, frameHeight)

	var results []Result
	if r, ok := classifyCrossfader(left, right, wristDist); ok {
		results = append(results, r)
	}
	if r, ok := classifySpreadHands(left, right, wristDist); ok {
		results = append(results, r)
	}
	if r, ok := classifyClap(left, right); ok {
		results = append(results, r)
	}
	if r, ok := classifyDualControl(left, right); ok {
		results = append(results, r)
	}
	return results
}

// twoHandConfidence combines both hands' confidence, attenuated by how far
// the wrist distance sits from the classifier's optimal distance.
func twoHandConfidence(left, right *HandFrame, dist, optimal float64) float64 {
	factor := geom.Clamp01(1 - math.Abs(dist-optimal)/optimal)
	return geom.Clamp01(math.Min(left.Confidence, right.Confidence) * factor)
}

// classifyCrossfader matches wrists held within the crossfader band. The
// value is the x coordinate of the wrist midpoint, so sliding both hands
// left or right sweeps the fader.
func classifyCrossfader(left, right *HandFrame, wristDist float64) (Result, bool) {
	if wristDist <= crossfaderMinDist || wristDist >= crossfaderMaxDist {
		return Result{}, false
	}
	mid := geom.Midpoint(left.Landmarks[Wrist], right.Landmarks[Wrist])
	return Result{
		Type:       GestureCrossfader,
		Confidence: twoHandConfidence(left, right, wristDist, crossfaderOptimalDist),
		Value:      geom.Clamp01(mid.X),
		Position:   &mid,
	}, true
}

// classifySpreadHands matches wrists pulled apart beyond the spread
// threshold. The value grows linearly over the spread range.
func classifySpreadHands(left, right *HandFrame, wristDist float64) (Result, bool) {
	if wristDist <= spreadMinDist {
		return Result{}, false
	}
	mid := geom.Midpoint(left.Landmarks[Wrist], right.Landmarks[Wrist])
	return Result{
		Type:       GestureSpreadHands,
		Confidence: math.Min(left.Confidence, right.Confidence) * spreadConfidence,
		Value:      geom.Clamp01((wristDist - spreadMinDist) / spreadRange),
		Position:   &mid,
	}, true
}

// classifyClap matches the palms (middle-finger MCP landmarks) brought
// together.
func classifyClap(left, right *HandFrame) (Result, bool) {
	palmDist := geom.Distance(left.Landmarks[MiddleMCP], right.Landmarks[MiddleMCP])
	if palmDist >= clapMaxPalmDist {
		return Result{}, false
	}
	mid := geom.Midpoint(left.Landmarks[MiddleMCP], right.Landmarks[MiddleMCP])
	return Result{
		Type:       GestureClap,
		Confidence: math.Min(left.Confidence, right.Confidence) * clapConfidence,
		Value:      1.0,
		Position:   &mid,
	}, true
}

// classifyDualControl matches both hands held as open palms. The value is
// the average wrist height, so raising or lowering both hands drives the
// control.
func classifyDualControl(left, right *HandFrame) (Result, bool) {
	leftPalm, leftOK := classifyOpenPalm(left)
	rightPalm, rightOK := classifyOpenPalm(right)
	if !leftOK || !rightOK {
		return Result{}, false
	}
	mid := geom.Midpoint(left.Landmarks[Wrist], right.Landmarks[Wrist])
	return Result{
		Type:       GestureDualControl,
		Confidence: math.Min(leftPalm.Confidence, rightPalm.Confidence),
		Value:      geom.Clamp01((left.Landmarks[Wrist].Y + right.Landmarks[Wrist].Y) / 2),
		Position:   &mid,
	}, true
}
