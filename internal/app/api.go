package app

import (
	"context"

	"jobbox/internal/domain/application"
	"jobbox/internal/domain/job"
	"jobbox/internal/integration/jobboard"
)

// API is the slice of the remote job-board API the services consume.
// Satisfied by *jobboard.Client; faked in tests.
type API interface {
	Login(ctx context.Context, email, password string) (jobboard.LoginResult, error)
	Register(ctx context.Context, req jobboard.RegisterRequest) error
	GetUser(ctx context.Context, token, userID string) (jobboard.User, error)
	UpdateUser(ctx context.Context, token, userID string, payload map[string]any) error
	ListJobs(ctx context.Context, token string) ([]job.Job, error)
	GetJob(ctx context.Context, token, jobID string) (job.Job, error)
	CreateJob(ctx context.Context, token string, posting job.Job) error
	UpdateJob(ctx context.Context, token, jobID string, partial map[string]any) error
	DeleteJob(ctx context.Context, token, jobID string) error
	Apply(ctx context.Context, token, jobID string) (string, error)
	ListApplicants(ctx context.Context, token, userID string) ([]application.Group, error)
	UpdateApplicationStatus(ctx context.Context, token, jobID, applicantID string, status application.Status) error
}
