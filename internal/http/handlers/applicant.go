package handlers

import (
	"net/http"

	"jobbox/internal/app"
	"jobbox/internal/domain/application"
	"jobbox/internal/http/middleware"
	"jobbox/internal/http/response"
)

type ApplicantHandler struct {
	applications *app.ApplicationService
}

func NewApplicantHandler(applications *app.ApplicationService) *ApplicantHandler {
	return &ApplicantHandler{applications: applications}
}

// List serves the applicant-review page: all of the company's postings
// with their applicants grouped per job.
func (h *ApplicantHandler) List(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	groups, err := h.applications.List(r.Context(), current.Token, current.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, groups)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /jobs/{jobID}/applicants/{applicantID}/status.
func (h *ApplicantHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := pathSegment(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	applicantID, err := pathSegment(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status := application.Status(req.Status)
	if err := h.applications.UpdateStatus(r.Context(), current.Token, current.UserID, jobID, applicantID, status); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "status updated", "status": string(status)})
}
