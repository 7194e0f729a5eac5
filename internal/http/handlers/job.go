package handlers

import (
	"net/http"
	"time"

	"jobbox/internal/app"
	"jobbox/internal/common"
	"jobbox/internal/domain/job"
	"jobbox/internal/http/middleware"
	"jobbox/internal/http/response"
	"jobbox/internal/session"
)

type JobHandler struct {
	jobs     *app.JobService
	sessions *session.Manager
	limiter  middleware.Limiter
}

func NewJobHandler(jobs *app.JobService, sessions *session.Manager, limiter middleware.Limiter) *JobHandler {
	return &JobHandler{jobs: jobs, sessions: sessions, limiter: limiter}
}

// List serves the public job browse page data. The search term comes
// from ?q= and filtering happens here, not at the remote API.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.Current(r)
	jobs, err := h.jobs.Browse(r.Context(), current.Token, r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathSegment(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	current := h.sessions.Current(r)
	found, err := h.jobs.Get(r.Context(), current.Token, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var posting job.Job
	if err := decodeJSON(r, &posting); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Post(r.Context(), current.Token, posting); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]string{"message": "job posted"})
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := pathSegment(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	var partial map[string]any
	if err := decodeJSON(r, &partial); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Update(r.Context(), current.Token, jobID, partial); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job updated"})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := pathSegment(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), current.Token, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job deleted"})
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := pathSegment(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID + ":" + current.UserID
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	message, err := h.jobs.Apply(r.Context(), current.Token, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if message == "" {
		message = "application submitted"
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *JobHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	summary, err := h.jobs.CompanyDashboard(r.Context(), current.Token, current.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, summary)
}
