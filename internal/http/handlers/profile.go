package handlers

import (
	"net/http"

	"jobbox/internal/app"
	"jobbox/internal/common"
	"jobbox/internal/http/middleware"
	"jobbox/internal/http/response"
)

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	loaded, err := h.profiles.Load(r.Context(), current.Token, current.UserID, current.Role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, loaded)
}

type updateProfileRequest struct {
	Profile map[string]any `json:"profile"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	// The save path replaces the stored profile wholesale, so a missing
	// or empty object would wipe it rather than update nothing.
	if len(req.Profile) == 0 {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"profile": "profile object is required"}))
		return
	}
	if err := h.profiles.Save(r.Context(), current.Token, current.UserID, current.Role, req.Profile); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}
