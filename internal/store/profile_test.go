package store

import (
	"errors"
	"testing"
)

func TestProfileRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := &Profile{ID: "p1", Name: "DJ Set", Description: "Live set bindings"}
	if err := repo.Create(p); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on create")
	}

	got, err := repo.GetByID("p1")
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got.Name != "DJ Set" || got.Description != "Live set bindings" {
		t.Errorf("unexpected profile: %+v", got)
	}
	if got.IsActive {
		t.Error("expected new profile to be inactive")
	}
}

func TestProfileRepository_GetByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Profiles().GetByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(&Profile{ID: "p1", Name: "First"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	if err := repo.Create(&Profile{ID: "p2", Name: "Second"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	profiles, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("expected 2 profiles, got %d", len(profiles))
	}
}

func TestProfileRepository_Update(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	p := &Profile{ID: "p1", Name: "Before"}
	if err := repo.Create(p); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	p.Name = "After"
	if err := repo.Update(p); err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}

	got, err := repo.GetByID("p1")
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got.Name != "After" {
		t.Errorf("expected name After, got %s", got.Name)
	}
}

func TestProfileRepository_Update_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Profiles().Update(&Profile{ID: "missing", Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(&Profile{ID: "p1", Name: "Doomed"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	if err := repo.Delete("p1"); err != nil {
		t.Fatalf("failed to delete profile: %v", err)
	}

	if _, err := repo.GetByID("p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete("p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestProfileRepository_SetActive(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(&Profile{ID: "p1", Name: "First", IsActive: true}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	if err := repo.Create(&Profile{ID: "p2", Name: "Second"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	if err := repo.SetActive("p2"); err != nil {
		t.Fatalf("failed to set active: %v", err)
	}

	p1, _ := repo.GetByID("p1")
	p2, _ := repo.GetByID("p2")
	if p1.IsActive {
		t.Error("expected p1 to be deactivated")
	}
	if !p2.IsActive {
		t.Error("expected p2 to be active")
	}

	if err := repo.SetActive("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestProfileRepository_Mappings(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(&Profile{ID: "p1", Name: "DJ Set"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	mappings := []Mapping{
		{
			ID: "m1", Name: "Vocals Volume",
			TargetStem: "vocals", ControlType: "volume",
			Hand: "any", GestureType: "peace_sign",
		},
		{
			ID: "m2", Name: "EQ Low",
			TargetStem: "master", ControlType: "eq",
			Hand: "left", GestureType: "pinch",
			Params: map[string]string{"band": "low"},
		},
	}
	if err := repo.ReplaceMappings("p1", mappings); err != nil {
		t.Fatalf("failed to replace mappings: %v", err)
	}

	got, err := repo.Mappings("p1")
	if err != nil {
		t.Fatalf("failed to get mappings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(got))
	}
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Error("expected mappings in stored order")
	}
	if got[1].Params["band"] != "low" {
		t.Errorf("expected params preserved, got %v", got[1].Params)
	}
	if got[0].Position != 0 || got[1].Position != 1 {
		t.Error("expected positions assigned from insertion order")
	}
}

func TestProfileRepository_ReplaceMappings_Replaces(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(&Profile{ID: "p1", Name: "DJ Set"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	first := []Mapping{{ID: "m1", Name: "Old", TargetStem: "vocals", ControlType: "volume", Hand: "any", GestureType: "fist"}}
	if err := repo.ReplaceMappings("p1", first); err != nil {
		t.Fatalf("failed to replace mappings: %v", err)
	}

	second := []Mapping{{ID: "m2", Name: "New", TargetStem: "drums", ControlType: "volume", Hand: "any", GestureType: "rock_sign"}}
	if err := repo.ReplaceMappings("p1", second); err != nil {
		t.Fatalf("failed to replace mappings: %v", err)
	}

	got, err := repo.Mappings("p1")
	if err != nil {
		t.Fatalf("failed to get mappings: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m2" {
		t.Errorf("expected only the new mapping, got %v", got)
	}
}

func TestProfileRepository_DeleteCascadesMappings(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(&Profile{ID: "p1", Name: "DJ Set"}); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	mappings := []Mapping{{ID: "m1", Name: "Vocals", TargetStem: "vocals", ControlType: "volume", Hand: "any", GestureType: "peace_sign"}}
	if err := repo.ReplaceMappings("p1", mappings); err != nil {
		t.Fatalf("failed to replace mappings: %v", err)
	}

	if err := repo.Delete("p1"); err != nil {
		t.Fatalf("failed to delete profile: %v", err)
	}

	got, err := repo.Mappings("p1")
	if err != nil {
		t.Fatalf("failed to query mappings: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected mappings removed with the profile, got %d", len(got))
	}
}
