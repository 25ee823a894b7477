// Package control maps classified gestures to audio control events through
// user-configurable mapping profiles.
package control

import "github.com/ayusman/mudra/internal/detector"

// Stem identifies the audio target of a control change.
type Stem string

const (
	StemVocals     Stem = "vocals"
	StemDrums      Stem = "drums"
	StemBass       Stem = "bass"
	StemMelody     Stem = "melody"
	StemOriginal   Stem = "original"
	StemCrossfader Stem = "crossfader"
	StemMaster     Stem = "master"
)

// ControlType identifies the kind of control a mapping drives.
type ControlType string

const (
	ControlVolume       ControlType = "volume"
	ControlMute         ControlType = "mute"
	ControlSolo         ControlType = "solo"
	ControlPan          ControlType = "pan"
	ControlEQ           ControlType = "eq"
	ControlEffect       ControlType = "effect"
	ControlPlaybackRate ControlType = "playback_rate"
	ControlCrossfade    ControlType = "crossfade"
)

// HandRequirement restricts which hand may trigger a mapping.
type HandRequirement string

const (
	HandAny   HandRequirement = "any"
	HandLeft  HandRequirement = "left"
	HandRight HandRequirement = "right"
	HandBoth  HandRequirement = "both"
)

// GestureMapping binds one gesture type to one control on one stem. IDs are
// unique within a profile.
type GestureMapping struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	TargetStem  Stem                 `json:"targetStem"`
	ControlType ControlType          `json:"controlType"`
	Hand        HandRequirement      `json:"handRequirement"`
	GestureType detector.GestureType `json:"gestureType"`
	Params      map[string]string    `json:"params,omitempty"`
}

// matches reports whether a detection result satisfies the mapping's
// gesture type and hand requirement. Two-hand results carry
// detector.HandNone.
func (m *GestureMapping) matches(r detector.Result) bool {
	if m.GestureType != r.Type {
		return false
	}
	switch m.Hand {
	case HandLeft:
		return r.Hand == detector.HandLeft
	case HandRight:
		return r.Hand == detector.HandRight
	case HandBoth:
		return r.Hand == detector.HandNone
	default:
		return true
	}
}

// MappingProfile is a named, swappable set of gesture mappings. Exactly one
// profile is active in the engine at a time.
type MappingProfile struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Mappings    []GestureMapping `json:"mappings"`
	IsActive    bool             `json:"isActive"`
}

// DefaultProfile returns the built-in profile with one binding per
// supported gesture, stem and control combination.
func DefaultProfile() *MappingProfile {
	return &MappingProfile{
		ID:          "default",
		Name:        "Default",
		Description: "Built-in gesture bindings for four-stem mixing",
		Mappings: []GestureMapping{
			{ID: "vocals-volume", Name: "Vocals Volume", GestureType: detector.GesturePeaceSign, TargetStem: StemVocals, ControlType: ControlVolume, Hand: HandAny},
			{ID: "drums-volume", Name: "Drums Volume", GestureType: detector.GestureRockSign, TargetStem: StemDrums, ControlType: ControlVolume, Hand: HandAny},
			{ID: "bass-volume", Name: "Bass Volume", GestureType: detector.GestureOKSign, TargetStem: StemBass, ControlType: ControlVolume, Hand: HandAny},
			{ID: "melody-volume", Name: "Melody Volume", GestureType: detector.GestureCallSign, TargetStem: StemMelody, ControlType: ControlVolume, Hand: HandAny},
			{ID: "master-mute", Name: "Master Mute", GestureType: detector.GestureFist, TargetStem: StemMaster, ControlType: ControlMute, Hand: HandAny},
			{ID: "vocals-solo", Name: "Vocals Solo", GestureType: detector.GestureThumbsUp, TargetStem: StemVocals, ControlType: ControlSolo, Hand: HandAny},
			{ID: "crossfade", Name: "Crossfade", GestureType: detector.GestureCrossfader, TargetStem: StemCrossfader, ControlType: ControlCrossfade, Hand: HandBoth},
			{ID: "effect-intensity", Name: "Effect Intensity", GestureType: detector.GestureCircular, TargetStem: StemMaster, ControlType: ControlEffect, Hand: HandAny},
			{ID: "eq-low", Name: "EQ Low", GestureType: detector.GesturePinch, TargetStem: StemMaster, ControlType: ControlEQ, Hand: HandAny, Params: map[string]string{"band": "low"}},
			{ID: "eq-mid", Name: "EQ Mid", GestureType: detector.GestureGrab, TargetStem: StemMaster, ControlType: ControlEQ, Hand: HandAny, Params: map[string]string{"band": "mid"}},
			{ID: "eq-high", Name: "EQ High", GestureType: detector.GestureTwist, TargetStem: StemMaster, ControlType: ControlEQ, Hand: HandAny, Params: map[string]string{"band": "high"}},
			{ID: "master-pan", Name: "Master Pan", GestureType: detector.GesturePoint, TargetStem: StemMaster, ControlType: ControlPan, Hand: HandAny},
			{ID: "playback-rate", Name: "Playback Rate", GestureType: detector.GestureSpreadHands, TargetStem: StemMaster, ControlType: ControlPlaybackRate, Hand: HandBoth},
			{ID: "master-volume", Name: "Master Volume", GestureType: detector.GestureDualControl, TargetStem: StemMaster, ControlType: ControlVolume, Hand: HandBoth},
			{ID: "reset-controls", Name: "Reset Controls", GestureType: detector.GestureClap, TargetStem: StemMaster, ControlType: ControlEffect, Hand: HandBoth, Params: map[string]string{"action": "reset"}},
		},
	}
}
