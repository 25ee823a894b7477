package detector

import "github.com/ayusman/mudra/internal/geom"

// Geometric thresholds for the shape classifiers. These are fixed
// heuristics; tuning happens downstream through the engine's sensitivity
// and deadzone knobs, never here.
const (
	okCircleMax     = 0.05
	pinchMax        = 0.08
	fistMaxAvgDist  = 0.1
	handHeightScale = 2.0
	okCircleScale   = 10.0
	callSpanScale   = 3.0
)

// Confidence multipliers applied to the hand's base confidence.
const (
	peaceConfidence    = 0.9
	rockConfidence     = 0.85
	okConfidence       = 0.8
	callConfidence     = 0.8
	thumbsUpConfidence = 0.85
	fistConfidence     = 0.9
	pinchConfidence    = 0.8
	openPalmConfidence = 0.75
)

// shapeClassifier tests one hand frame for a single gesture shape.
type shapeClassifier func(f *HandFrame) (Result, bool)

// shapeClassifiers is the dispatch table of single-hand classifiers. All
// classifiers run on every present hand each tick; they are not mutually
// exclusive, so one hand can yield several results.
var shapeClassifiers = []shapeClassifier{
	classifyPeaceSign,
	classifyRockSign,
	classifyOKSign,
	classifyCallSign,
	classifyThumbsUp,
	classifyFist,
	classifyPinch,
	classifyOpenPalm,
}

// fingerExtended compares a fingertip against its PIP joint. In normalized
// frame space smaller y is up, so tip above joint means extended.
func fingerExtended(f *HandFrame, tip, pip int) bool {
	return f.Landmarks[tip].Y < f.Landmarks[pip].Y
}

// thumbExtended uses the IP joint since the thumb has no PIP landmark.
func thumbExtended(f *HandFrame) bool {
	return f.Landmarks[ThumbTip].Y < f.Landmarks[ThumbIP].Y
}

// handHeight is the wrist to middle fingertip distance, the scalar behind
// the height-driven gesture values.
func handHeight(f *HandFrame) float64 {
	return geom.Distance(f.Landmarks[Wrist], f.Landmarks[MiddleTip])
}

// extendedFingerCount counts extended digits, thumb included.
func extendedFingerCount(f *HandFrame) int {
	count := 0
	if thumbExtended(f) {
		count++
	}
	if fingerExtended(f, IndexTip, IndexPIP) {
		count++
	}
	if fingerExtended(f, MiddleTip, MiddlePIP) {
		count++
	}
	if fingerExtended(f, RingTip, RingPIP) {
		count++
	}
	if fingerExtended(f, PinkyTip, PinkyPIP) {
		count++
	}
	return count
}

// classifyPeaceSign matches index and middle extended with ring, pinky and
// thumb retracted. The value tracks hand height.
func classifyPeaceSign(f *HandFrame) (Result, bool) {
	if !fingerExtended(f, IndexTip, IndexPIP) || !fingerExtended(f, MiddleTip, MiddlePIP) {
		return Result{}, false
	}
	if fingerExtended(f, RingTip, RingPIP) || fingerExtended(f, PinkyTip, PinkyPIP) || thumbExtended(f) {
		return Result{}, false
	}
	return Result{
		Type:       GesturePeaceSign,
		Confidence: f.Confidence * peaceConfidence,
		Value:      geom.Clamp01(handHeight(f) * handHeightScale),
		Position:   landmarkPos(f, Wrist),
	}, true
}

// classifyRockSign matches index and pinky extended with middle, ring and
// thumb retracted.
func classifyRockSign(f *HandFrame) (Result, bool) {
	if !fingerExtended(f, IndexTip, IndexPIP) || !fingerExtended(f, PinkyTip, PinkyPIP) {
		return Result{}, false
	}
	if fingerExtended(f, MiddleTip, MiddlePIP) || fingerExtended(f, RingTip, RingPIP) || thumbExtended(f) {
		return Result{}, false
	}
	return Result{
		Type:       GestureRockSign,
		Confidence: f.Confidence * rockConfidence,
		Value:      geom.Clamp01(handHeight(f) * handHeightScale),
		Position:   landmarkPos(f, Wrist),
	}, true
}

// classifyOKSign matches thumb and index tips touching while the remaining
// fingers stay extended. The value follows the circle size.
func classifyOKSign(f *HandFrame) (Result, bool) {
	thumb := f.Landmarks[ThumbTip]
	index := f.Landmarks[IndexTip]
	if geom.Distance(thumb, index) >= okCircleMax {
		return Result{}, false
	}
	if !fingerExtended(f, MiddleTip, MiddlePIP) || !fingerExtended(f, RingTip, RingPIP) || !fingerExtended(f, PinkyTip, PinkyPIP) {
		return Result{}, false
	}
	dx := thumb.X - index.X
	if dx < 0 {
		dx = -dx
	}
	dy := thumb.Y - index.Y
	if dy < 0 {
		dy = -dy
	}
	return Result{
		Type:       GestureOKSign,
		Confidence: f.Confidence * okConfidence,
		Value:      geom.Clamp01((dx + dy) * okCircleScale),
		Position:   landmarkPos(f, ThumbTip),
	}, true
}

// classifyCallSign matches thumb and pinky extended with the middle three
// fingers retracted. The value follows the thumb to pinky span.
func classifyCallSign(f *HandFrame) (Result, bool) {
	if !thumbExtended(f) || !fingerExtended(f, PinkyTip, PinkyPIP) {
		return Result{}, false
	}
	if fingerExtended(f, IndexTip, IndexPIP) || fingerExtended(f, MiddleTip, MiddlePIP) || fingerExtended(f, RingTip, RingPIP) {
		return Result{}, false
	}
	span := geom.Distance(f.Landmarks[ThumbTip], f.Landmarks[PinkyTip])
	return Result{
		Type:       GestureCallSign,
		Confidence: f.Confidence * callConfidence,
		Value:      geom.Clamp01(span * callSpanScale),
		Position:   landmarkPos(f, Wrist),
	}, true
}

// classifyThumbsUp matches only the thumb extended.
func classifyThumbsUp(f *HandFrame) (Result, bool) {
	if !thumbExtended(f) {
		return Result{}, false
	}
	if fingerExtended(f, IndexTip, IndexPIP) || fingerExtended(f, MiddleTip, MiddlePIP) ||
		fingerExtended(f, RingTip, RingPIP) || fingerExtended(f, PinkyTip, PinkyPIP) {
		return Result{}, false
	}
	return Result{
		Type:       GestureThumbsUp,
		Confidence: f.Confidence * thumbsUpConfidence,
		Value:      1.0,
		Position:   landmarkPos(f, ThumbTip),
	}, true
}

// classifyFist matches all five fingertips curled close to the wrist.
func classifyFist(f *HandFrame) (Result, bool) {
	wrist := f.Landmarks[Wrist]
	tips := [...]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}
	var total float64
	for _, tip := range tips {
		total += geom.Distance(wrist, f.Landmarks[tip])
	}
	if total/float64(len(tips)) >= fistMaxAvgDist {
		return Result{}, false
	}
	return Result{
		Type:       GestureFist,
		Confidence: f.Confidence * fistConfidence,
		Value:      1.0,
		Position:   landmarkPos(f, Wrist),
	}, true
}

// classifyPinch matches thumb and index tips within the pinch threshold.
// The value grows as the pinch tightens: (threshold - distance) / threshold.
func classifyPinch(f *HandFrame) (Result, bool) {
	dist := geom.Distance(f.Landmarks[ThumbTip], f.Landmarks[IndexTip])
	if dist >= pinchMax {
		return Result{}, false
	}
	mid := geom.Midpoint(f.Landmarks[ThumbTip], f.Landmarks[IndexTip])
	return Result{
		Type:       GesturePinch,
		Confidence: f.Confidence * pinchConfidence,
		Value:      geom.Clamp01((pinchMax - dist) / pinchMax),
		Position:   &mid,
	}, true
}

// classifyOpenPalm matches at least four of five digits extended. The value
// is the extended fraction.
func classifyOpenPalm(f *HandFrame) (Result, bool) {
	count := extendedFingerCount(f)
	if count < 4 {
		return Result{}, false
	}
	return Result{
		Type:       GestureOpenPalm,
		Confidence: f.Confidence * openPalmConfidence,
		Value:      float64(count) / 5.0,
		Position:   landmarkPos(f, Wrist),
	}, true
}
