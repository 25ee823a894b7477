package detector

import "github.com/ayusman/mudra/internal/geom"

// Preset hand frames for every implemented shape gesture. They are used by
// the tests and by callers that need a known-good synthetic input, e.g. a
// landmark producer running in replay mode.

// PeaceHand returns a hand with index and middle fingers extended and the
// rest curled. The middle fingertip sits 0.5 above the wrist, so the hand
// height value clamps to 1.0.
func PeaceHand() HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb curled across the palm
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.54, Y: 0.75}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.55, Y: 0.72}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.56, Y: 0.70}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.55, Y: 0.74}

	// Index finger extended upward
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.55, Y: 0.68}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.56, Y: 0.55}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.57, Y: 0.45}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.57, Y: 0.35}

	// Middle finger extended upward
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.52}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.50, Y: 0.40}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.50, Y: 0.30}

	// Ring finger curled
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.45, Y: 0.66}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.445, Y: 0.70}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.44, Y: 0.72}

	// Pinky finger curled
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.40, Y: 0.68}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.395, Y: 0.72}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.39, Y: 0.74}

	return f
}

// RockHand returns a hand with index and pinky extended and the middle,
// ring and thumb curled.
func RockHand() HandFrame {
	f := PeaceHand()

	// Middle finger curled
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.64}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.495, Y: 0.68}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.49, Y: 0.71}

	// Pinky finger extended outward
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.38, Y: 0.62}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.37, Y: 0.56}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.36, Y: 0.50}

	return f
}

// OKHand returns a hand with thumb and index tips touching (0.0224 apart)
// and the remaining three fingers extended.
func OKHand() HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb curled down to meet the index tip
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.55, Y: 0.75}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.57, Y: 0.68}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.56, Y: 0.50}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.57, Y: 0.55}

	// Index curled into the circle
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.55, Y: 0.68}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.56, Y: 0.55}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.57, Y: 0.56}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.58, Y: 0.57}

	// Middle finger extended upward
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.52}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.50, Y: 0.40}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.50, Y: 0.30}

	// Ring finger extended upward
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.45, Y: 0.55}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.44, Y: 0.45}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.43, Y: 0.35}

	// Pinky finger extended upward
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.40, Y: 0.60}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.38, Y: 0.50}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.37, Y: 0.42}

	return f
}

// CallHand returns a hand with thumb and pinky extended and the middle
// three fingers curled.
func CallHand() HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb extended outward
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.55, Y: 0.75}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.57, Y: 0.70}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.58, Y: 0.65}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.60, Y: 0.55}

	// Index finger curled
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.55, Y: 0.68}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.56, Y: 0.60}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.555, Y: 0.63}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.55, Y: 0.65}

	// Middle finger curled
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.62}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.495, Y: 0.65}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.49, Y: 0.67}

	// Ring finger curled
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.45, Y: 0.64}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.445, Y: 0.67}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.44, Y: 0.69}

	// Pinky finger extended outward
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.38, Y: 0.62}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.37, Y: 0.56}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.36, Y: 0.50}

	return f
}

// ThumbsUpHand returns a hand with only the thumb extended.
func ThumbsUpHand() HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb extended upward
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.55, Y: 0.75}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.58, Y: 0.65}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.58, Y: 0.50}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.58, Y: 0.35}

	// Index finger curled
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.55, Y: 0.70}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.55, Y: 0.68}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.52, Y: 0.70}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.50, Y: 0.72}

	// Middle finger curled
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.68}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.47, Y: 0.68}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.45, Y: 0.70}

	// Ring finger curled
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.45, Y: 0.70}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.42, Y: 0.70}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.40, Y: 0.72}

	// Pinky finger curled
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.40, Y: 0.72}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.37, Y: 0.72}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.35, Y: 0.74}

	return f
}

// FistHand returns a hand with all five fingertips curled close to the
// wrist (average tip distance roughly 0.05).
func FistHand() HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb folded over the fingers
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.54, Y: 0.76}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.55, Y: 0.73}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.54, Y: 0.72}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.53, Y: 0.77}

	// Index finger curled into the palm
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.55, Y: 0.70}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.54, Y: 0.68}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.53, Y: 0.72}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.52, Y: 0.76}

	// Middle finger curled into the palm
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.69}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.67}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.50, Y: 0.72}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.50, Y: 0.76}

	// Ring finger curled into the palm
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.46, Y: 0.70}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.46, Y: 0.68}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.46, Y: 0.72}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.47, Y: 0.76}

	// Pinky finger curled into the palm
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.42, Y: 0.72}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.42, Y: 0.70}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.42, Y: 0.74}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.43, Y: 0.77}

	return f
}

// PinchHand returns a hand with thumb and index tips exactly sep apart and
// the remaining fingers curled.
func PinchHand(sep float64) HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb reaching toward the index tip
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.54, Y: 0.74}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.55, Y: 0.68}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.54, Y: 0.50}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.55, Y: 0.55}

	// Index curled down toward the thumb, tip sep below the thumb tip
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.56, Y: 0.68}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.56, Y: 0.50}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.56, Y: 0.53}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.55, Y: 0.55 + sep}

	// Middle finger curled
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.495, Y: 0.68}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.49, Y: 0.70}

	// Ring finger curled
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.445, Y: 0.70}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.44, Y: 0.72}

	// Pinky finger curled
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.395, Y: 0.72}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.39, Y: 0.74}

	return f
}

// OpenPalmHand returns a hand with all five fingers extended.
func OpenPalmHand() HandFrame {
	f := HandFrame{Confidence: 0.95, Landmarks: make([]geom.Point2D, NumLandmarks)}

	f.Landmarks[Wrist] = geom.Point2D{X: 0.50, Y: 0.80}

	// Thumb extended to the side
	f.Landmarks[ThumbCMC] = geom.Point2D{X: 0.55, Y: 0.75}
	f.Landmarks[ThumbMCP] = geom.Point2D{X: 0.62, Y: 0.70}
	f.Landmarks[ThumbIP] = geom.Point2D{X: 0.68, Y: 0.65}
	f.Landmarks[ThumbTip] = geom.Point2D{X: 0.73, Y: 0.60}

	// Index finger extended upward
	f.Landmarks[IndexMCP] = geom.Point2D{X: 0.55, Y: 0.68}
	f.Landmarks[IndexPIP] = geom.Point2D{X: 0.57, Y: 0.55}
	f.Landmarks[IndexDIP] = geom.Point2D{X: 0.58, Y: 0.45}
	f.Landmarks[IndexTip] = geom.Point2D{X: 0.58, Y: 0.35}

	// Middle finger extended upward
	f.Landmarks[MiddleMCP] = geom.Point2D{X: 0.50, Y: 0.66}
	f.Landmarks[MiddlePIP] = geom.Point2D{X: 0.50, Y: 0.52}
	f.Landmarks[MiddleDIP] = geom.Point2D{X: 0.50, Y: 0.40}
	f.Landmarks[MiddleTip] = geom.Point2D{X: 0.50, Y: 0.28}

	// Ring finger extended upward
	f.Landmarks[RingMCP] = geom.Point2D{X: 0.45, Y: 0.68}
	f.Landmarks[RingPIP] = geom.Point2D{X: 0.43, Y: 0.55}
	f.Landmarks[RingDIP] = geom.Point2D{X: 0.42, Y: 0.45}
	f.Landmarks[RingTip] = geom.Point2D{X: 0.42, Y: 0.35}

	// Pinky finger extended upward
	f.Landmarks[PinkyMCP] = geom.Point2D{X: 0.40, Y: 0.70}
	f.Landmarks[PinkyPIP] = geom.Point2D{X: 0.37, Y: 0.60}
	f.Landmarks[PinkyDIP] = geom.Point2D{X: 0.35, Y: 0.50}
	f.Landmarks[PinkyTip] = geom.Point2D{X: 0.34, Y: 0.42}

	return f
}

// SparseHand returns a frame with fewer than 21 landmarks. The detector
// must skip it without error.
func SparseHand() HandFrame {
	return HandFrame{
		Confidence: 0.9,
		Landmarks: []geom.Point2D{
			{X: 0.5, Y: 0.8}, {X: 0.55, Y: 0.7}, {X: 0.5, Y: 0.6},
			{X: 0.45, Y: 0.7}, {X: 0.4, Y: 0.75},
		},
	}
}

// ShiftedHand returns a copy of f with every landmark translated by
// (dx, dy).
func ShiftedHand(f HandFrame, dx, dy float64) HandFrame {
	shifted := HandFrame{
		Confidence: f.Confidence,
		Landmarks:  make([]geom.Point2D, len(f.Landmarks)),
	}
	for i, p := range f.Landmarks {
		shifted.Landmarks[i] = geom.Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return shifted
}

// CrossfaderHands returns open palms with wrists at (0.3,0.5) and
// (0.7,0.5): a wrist distance of 0.4, the crossfader's optimal distance,
// with the fader midpoint centered.
func CrossfaderHands() (left, right HandFrame) {
	left = ShiftedHand(OpenPalmHand(), -0.2, -0.3)
	right = ShiftedHand(OpenPalmHand(), 0.2, -0.3)
	return left, right
}

// SpreadHandsPair returns fists with wrists at (0.2,0.5) and (0.8,0.5): a
// wrist distance of 0.6, well past the spread threshold.
func SpreadHandsPair() (left, right HandFrame) {
	left = ShiftedHand(FistHand(), -0.3, -0.3)
	right = ShiftedHand(FistHand(), 0.3, -0.3)
	return left, right
}

// ClapHands returns fists with both wrists at (0.5,0.5) and the palm
// landmarks (middle-finger MCPs) 0.03 apart.
func ClapHands() (left, right HandFrame) {
	left = ShiftedHand(FistHand(), 0, -0.3)
	right = ShiftedHand(FistHand(), 0, -0.3)
	left.Landmarks[MiddleMCP] = geom.Point2D{X: 0.485, Y: 0.45}
	right.Landmarks[MiddleMCP] = geom.Point2D{X: 0.515, Y: 0.45}
	return left, right
}

// DualControlHands returns open palms with wrists at (0.42,0.5) and
// (0.58,0.5), both passing the open-palm test.
func DualControlHands() (left, right HandFrame) {
	left = ShiftedHand(OpenPalmHand(), -0.08, -0.3)
	right = ShiftedHand(OpenPalmHand(), 0.08, -0.3)
	return left, right
}
