// Package api provides HTTP API handlers for the mudra gesture control
// engine.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/store"
)

// ProfilesHandler handles HTTP requests for mapping profile resources. It
// keeps the persisted profiles and the live engine registry in step.
type ProfilesHandler struct {
	store  *store.Store
	engine *control.Engine
}

// NewProfilesHandler creates a new ProfilesHandler with the given store and
// engine.
func NewProfilesHandler(s *store.Store, e *control.Engine) *ProfilesHandler {
	return &ProfilesHandler{store: s, engine: e}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *ProfilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/profiles, /api/profiles/{id},
	// /api/profiles/{id}/activate
	path := strings.TrimPrefix(r.URL.Path, "/api/profiles")
	path = strings.Trim(path, "/")

	if path == "" {
		// Collection endpoint: /api/profiles
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if id, ok := strings.CutSuffix(path, "/activate"); ok {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.activate(w, r, id)
		return
	}

	// Item endpoint: /api/profiles/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type mappingPayload struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	TargetStem  string            `json:"targetStem"`
	ControlType string            `json:"controlType"`
	Hand        string            `json:"handRequirement,omitempty"`
	GestureType string            `json:"gestureType"`
	Params      map[string]string `json:"params,omitempty"`
}

type createProfileRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Mappings    []mappingPayload `json:"mappings"`
}

type updateProfileRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Mappings    []mappingPayload `json:"mappings"`
}

type profileResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IsActive    bool             `json:"isActive"`
	Mappings    []mappingPayload `json:"mappings,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type listProfilesResponse struct {
	Profiles []profileResponse `json:"profiles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Profile and its mappings to a
// profileResponse.
func toResponse(p *store.Profile, mappings []store.Mapping) profileResponse {
	resp := profileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, m := range mappings {
		resp.Mappings = append(resp.Mappings, mappingPayload{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			TargetStem:  m.TargetStem,
			ControlType: m.ControlType,
			Hand:        m.Hand,
			GestureType: m.GestureType,
			Params:      m.Params,
		})
	}
	return resp
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/profiles and returns all profiles.
func (h *ProfilesHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	response := listProfilesResponse{
		Profiles: make([]profileResponse, 0, len(profiles)),
	}

	for _, p := range profiles {
		response.Profiles = append(response.Profiles, toResponse(p, nil))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/profiles/{id} and returns one profile with its
// mappings.
func (h *ProfilesHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	mappings, err := h.store.Profiles().Mappings(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get mappings")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(profile, mappings))
}

// create handles POST /api/profiles: it persists the profile and registers
// it with the engine.
func (h *ProfilesHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := &store.Profile{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}
	mappings, err := storeMappings(profile.ID, req.Mappings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Profiles().Create(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}
	if err := h.store.Profiles().ReplaceMappings(profile.ID, mappings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save mappings")
		return
	}

	h.engine.AddProfile(ProfileFromStore(profile, mappings))

	writeJSON(w, http.StatusCreated, toResponse(profile, mappings))
}

// update handles PUT /api/profiles/{id} and updates an existing profile.
func (h *ProfilesHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Description != "" {
		profile.Description = req.Description
	}

	mappings, err := storeMappings(id, req.Mappings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Profiles().Update(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if req.Mappings != nil {
		if err := h.store.Profiles().ReplaceMappings(id, mappings); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save mappings")
			return
		}
	} else if mappings, err = h.store.Profiles().Mappings(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get mappings")
		return
	}

	h.engine.AddProfile(ProfileFromStore(profile, mappings))

	writeJSON(w, http.StatusOK, toResponse(profile, mappings))
}

// delete handles DELETE /api/profiles/{id} and removes a profile from the
// store and the engine.
func (h *ProfilesHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Profiles().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	h.engine.RemoveProfile(id)

	w.WriteHeader(http.StatusNoContent)
}

// activate handles POST /api/profiles/{id}/activate.
func (h *ProfilesHandler) activate(w http.ResponseWriter, r *http.Request, id string) {
	if !h.engine.SetActiveProfile(id) {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}

	// Persist the flag when the profile is a stored one; the built-in
	// default only lives in the engine.
	if err := h.store.Profiles().SetActive(id); err != nil && !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to persist activation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"active": id})
}
