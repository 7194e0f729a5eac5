package app

import (
	"context"
	"sync"

	"jobbox/internal/common"
	"jobbox/internal/domain/application"
)

// statusKey identifies one outstanding status update. A composite key,
// not a concatenated string, so odd id formats cannot collide.
type statusKey struct {
	JobID       string
	ApplicantID string
}

// ApplicationService serves the applicant-review flow: per-job
// applicant groups for a company, and status updates with one
// outstanding request per (job, applicant) pair.
type ApplicationService struct {
	api API

	mu       sync.Mutex
	inflight map[statusKey]struct{}
	groups   map[string][]application.Group
}

func NewApplicationService(api API) *ApplicationService {
	return &ApplicationService{
		api:      api,
		inflight: make(map[statusKey]struct{}),
		groups:   make(map[string][]application.Group),
	}
}

// List fetches the applicant groups for a company user and keeps them
// as the working copy that status updates mutate.
func (s *ApplicationService) List(ctx context.Context, token, userID string) ([]application.Group, error) {
	groups, err := s.api.ListApplicants(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.groups[userID] = groups
	s.mu.Unlock()
	return cloneGroups(groups), nil
}

// UpdateStatus moves one applicant to a new status. While a request
// for a pair is outstanding, further updates for that exact pair are
// rejected as busy; other pairs proceed independently. Only the
// matching record changes, and only after the remote call succeeds.
func (s *ApplicationService) UpdateStatus(ctx context.Context, token, userID, jobID, applicantID string, status application.Status) error {
	if !application.ValidStatus(status) {
		return common.NewValidationError("invalid status", map[string]string{"status": "unknown status"})
	}
	key := statusKey{JobID: jobID, ApplicantID: applicantID}

	s.mu.Lock()
	if _, busy := s.inflight[key]; busy {
		s.mu.Unlock()
		return common.NewError(common.CodeConflict, "status update already in flight", nil)
	}
	s.inflight[key] = struct{}{}
	s.mu.Unlock()

	err := s.api.UpdateApplicationStatus(ctx, token, jobID, applicantID, status)

	s.mu.Lock()
	delete(s.inflight, key)
	if err == nil {
		s.applyStatusLocked(userID, jobID, applicantID, status)
	}
	s.mu.Unlock()
	return err
}

func (s *ApplicationService) applyStatusLocked(userID, jobID, applicantID string, status application.Status) {
	groups := s.groups[userID]
	for gi := range groups {
		if groups[gi].JobID != jobID {
			continue
		}
		for ai := range groups[gi].Applicants {
			if groups[gi].Applicants[ai].ID == applicantID {
				groups[gi].Applicants[ai].Status = status
			}
		}
	}
}

// Cached returns the current working copy without a remote fetch.
func (s *ApplicationService) Cached(userID string) []application.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGroups(s.groups[userID])
}

func cloneGroups(groups []application.Group) []application.Group {
	cloned := make([]application.Group, len(groups))
	for i, group := range groups {
		cloned[i] = group
		cloned[i].Applicants = append([]application.Applicant(nil), group.Applicants...)
	}
	return cloned
}
