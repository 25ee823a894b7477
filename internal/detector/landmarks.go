// Package detector classifies hand-landmark frames into discrete,
// confidence-scored gestures.
package detector

import "github.com/ayusman/mudra/internal/geom"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Hand identifies which hand a frame or detection result belongs to.
// Two-hand results carry HandNone.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
	HandNone  Hand = ""
)

// HandFrame is one hand observation from the landmark producer: 21
// normalized 2D points plus a per-hand detection confidence in [0,1].
type HandFrame struct {
	Landmarks  []geom.Point2D `json:"landmarks"`
	Confidence float64        `json:"confidence"`
}

// Valid reports whether the frame carries the full landmark set. Frames
// with fewer points are skipped for the tick, never treated as errors.
func (f *HandFrame) Valid() bool {
	return f != nil && len(f.Landmarks) == NumLandmarks
}

// landmarkPos copies one landmark out of the frame for use as a result
// position.
func landmarkPos(f *HandFrame, index int) *geom.Point2D {
	p := f.Landmarks[index]
	return &p
}
