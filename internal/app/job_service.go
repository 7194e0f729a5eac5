package app

import (
	"context"
	"strings"

	"jobbox/internal/common"
	"jobbox/internal/domain/job"
)

type JobService struct {
	api API
}

func NewJobService(api API) *JobService {
	return &JobService{api: api}
}

// Browse lists jobs and applies the search term client-side.
func (s *JobService) Browse(ctx context.Context, token, term string) ([]job.Job, error) {
	jobs, err := s.api.ListJobs(ctx, token)
	if err != nil {
		return nil, err
	}
	return job.Filter(jobs, term), nil
}

func (s *JobService) Get(ctx context.Context, token, jobID string) (job.Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return job.Job{}, common.NewValidationError("invalid request", map[string]string{"jobId": "job id is required"})
	}
	return s.api.GetJob(ctx, token, jobID)
}

func (s *JobService) Post(ctx context.Context, token string, posting job.Job) error {
	if err := posting.Validate(); err != nil {
		return err
	}
	return s.api.CreateJob(ctx, token, posting)
}

func (s *JobService) Update(ctx context.Context, token, jobID string, partial map[string]any) error {
	if strings.TrimSpace(jobID) == "" {
		return common.NewValidationError("invalid request", map[string]string{"jobId": "job id is required"})
	}
	if len(partial) == 0 {
		return common.NewValidationError("invalid request", map[string]string{"body": "no fields to update"})
	}
	return s.api.UpdateJob(ctx, token, jobID, partial)
}

func (s *JobService) Delete(ctx context.Context, token, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return common.NewValidationError("invalid request", map[string]string{"jobId": "job id is required"})
	}
	return s.api.DeleteJob(ctx, token, jobID)
}

// Apply submits a student application and returns the server's
// confirmation message.
func (s *JobService) Apply(ctx context.Context, token, jobID string) (string, error) {
	if strings.TrimSpace(jobID) == "" {
		return "", common.NewValidationError("invalid request", map[string]string{"jobId": "job id is required"})
	}
	return s.api.Apply(ctx, token, jobID)
}

// Dashboard summarizes a company's own postings with the number of
// applicants each has drawn.
type Dashboard struct {
	Jobs            []job.Job      `json:"jobs"`
	ApplicantCounts map[string]int `json:"applicantCounts"`
}

func (s *JobService) CompanyDashboard(ctx context.Context, token, userID string) (Dashboard, error) {
	jobs, err := s.api.ListJobs(ctx, token)
	if err != nil {
		return Dashboard{}, err
	}
	own := make([]job.Job, 0, len(jobs))
	for _, item := range jobs {
		if item.PostedBy == userID {
			own = append(own, item)
		}
	}
	counts := make(map[string]int, len(own))
	groups, err := s.api.ListApplicants(ctx, token, userID)
	if err != nil {
		return Dashboard{}, err
	}
	for _, group := range groups {
		counts[group.JobID] = len(group.Applicants)
	}
	return Dashboard{Jobs: own, ApplicantCounts: counts}, nil
}
