package detector

import (
	"time"

	"github.com/ayusman/mudra/internal/geom"
)

// GestureType identifies a classified gesture.
type GestureType string

// Single-hand shape gestures.
const (
	GesturePeaceSign GestureType = "peace_sign"
	GestureRockSign  GestureType = "rock_sign"
	GestureOKSign    GestureType = "ok_sign"
	GestureCallSign  GestureType = "call_sign"
	GestureThumbsUp  GestureType = "thumbs_up"
	GestureFist      GestureType = "fist"
	GesturePinch     GestureType = "pinch"
	GestureOpenPalm  GestureType = "open_palm"
)

// Two-hand gestures.
const (
	GestureCrossfader  GestureType = "crossfader"
	GestureSpreadHands GestureType = "spread_hands"
	GestureClap        GestureType = "clap"
	GestureDualControl GestureType = "dual_control"
)

// Reserved gesture types. They exist so mappings can bind them, but no
// classifier emits them yet; motion gestures will be derived from the
// rolling history once trajectory analysis lands.
const (
	GestureSwipeLeft  GestureType = "swipe_left"
	GestureSwipeRight GestureType = "swipe_right"
	GestureSwipeUp    GestureType = "swipe_up"
	GestureSwipeDown  GestureType = "swipe_down"
	GestureCircular   GestureType = "circular"
	GesturePoint      GestureType = "point"
	GestureGrab       GestureType = "grab"
	GestureTwist      GestureType = "twist"
)

// Result is a single gesture classification for one tick. Immutable once
// produced.
type Result struct {
	Type       GestureType        `json:"type"`
	Confidence float64            `json:"confidence"`
	Value      float64            `json:"value"`
	Position   *geom.Point2D      `json:"position,omitempty"`
	Hand       Hand               `json:"hand,omitempty"`
	Metadata   map[string]float64 `json:"metadata,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}
