package api

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/store"
)

// ProfileFromStore converts a persisted profile and its mappings into the
// engine's representation. The daemon uses it to load saved profiles at
// startup.
func ProfileFromStore(p *store.Profile, mappings []store.Mapping) *control.MappingProfile {
	out := &control.MappingProfile{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
	}
	for _, m := range mappings {
		hand := control.HandRequirement(m.Hand)
		if hand == "" {
			hand = control.HandAny
		}
		out.Mappings = append(out.Mappings, control.GestureMapping{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			TargetStem:  control.Stem(m.TargetStem),
			ControlType: control.ControlType(m.ControlType),
			Hand:        hand,
			GestureType: detector.GestureType(m.GestureType),
			Params:      m.Params,
		})
	}
	return out
}

// storeMappings converts request payloads into store mappings, assigning
// ids where missing and validating the required fields.
func storeMappings(profileID string, payloads []mappingPayload) ([]store.Mapping, error) {
	var mappings []store.Mapping
	for i, p := range payloads {
		if p.GestureType == "" {
			return nil, fmt.Errorf("mapping %d: gestureType is required", i)
		}
		if p.ControlType == "" {
			return nil, fmt.Errorf("mapping %d: controlType is required", i)
		}
		if p.TargetStem == "" {
			return nil, fmt.Errorf("mapping %d: targetStem is required", i)
		}
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		hand := p.Hand
		if hand == "" {
			hand = string(control.HandAny)
		}
		mappings = append(mappings, store.Mapping{
			ID:          id,
			ProfileID:   profileID,
			Position:    i,
			Name:        p.Name,
			Description: p.Description,
			TargetStem:  p.TargetStem,
			ControlType: p.ControlType,
			Hand:        hand,
			GestureType: p.GestureType,
			Params:      p.Params,
		})
	}
	return mappings, nil
}
