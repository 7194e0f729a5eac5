package app

import (
	"context"

	"jobbox/internal/domain/application"
	"jobbox/internal/domain/job"
	"jobbox/internal/integration/jobboard"
)

// fakeAPI lets each test stub only the calls it exercises.
type fakeAPI struct {
	login            func(ctx context.Context, email, password string) (jobboard.LoginResult, error)
	register         func(ctx context.Context, req jobboard.RegisterRequest) error
	getUser          func(ctx context.Context, token, userID string) (jobboard.User, error)
	updateUser       func(ctx context.Context, token, userID string, payload map[string]any) error
	listJobs         func(ctx context.Context, token string) ([]job.Job, error)
	getJob           func(ctx context.Context, token, jobID string) (job.Job, error)
	createJob        func(ctx context.Context, token string, posting job.Job) error
	updateJob        func(ctx context.Context, token, jobID string, partial map[string]any) error
	deleteJob        func(ctx context.Context, token, jobID string) error
	apply            func(ctx context.Context, token, jobID string) (string, error)
	listApplicants   func(ctx context.Context, token, userID string) ([]application.Group, error)
	updateAppStatus  func(ctx context.Context, token, jobID, applicantID string, status application.Status) error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (jobboard.LoginResult, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAPI) Register(ctx context.Context, req jobboard.RegisterRequest) error {
	return f.register(ctx, req)
}

func (f *fakeAPI) GetUser(ctx context.Context, token, userID string) (jobboard.User, error) {
	return f.getUser(ctx, token, userID)
}

func (f *fakeAPI) UpdateUser(ctx context.Context, token, userID string, payload map[string]any) error {
	return f.updateUser(ctx, token, userID, payload)
}

func (f *fakeAPI) ListJobs(ctx context.Context, token string) ([]job.Job, error) {
	return f.listJobs(ctx, token)
}

func (f *fakeAPI) GetJob(ctx context.Context, token, jobID string) (job.Job, error) {
	return f.getJob(ctx, token, jobID)
}

func (f *fakeAPI) CreateJob(ctx context.Context, token string, posting job.Job) error {
	return f.createJob(ctx, token, posting)
}

func (f *fakeAPI) UpdateJob(ctx context.Context, token, jobID string, partial map[string]any) error {
	return f.updateJob(ctx, token, jobID, partial)
}

func (f *fakeAPI) DeleteJob(ctx context.Context, token, jobID string) error {
	return f.deleteJob(ctx, token, jobID)
}

func (f *fakeAPI) Apply(ctx context.Context, token, jobID string) (string, error) {
	return f.apply(ctx, token, jobID)
}

func (f *fakeAPI) ListApplicants(ctx context.Context, token, userID string) ([]application.Group, error) {
	return f.listApplicants(ctx, token, userID)
}

func (f *fakeAPI) UpdateApplicationStatus(ctx context.Context, token, jobID, applicantID string, status application.Status) error {
	return f.updateAppStatus(ctx, token, jobID, applicantID, status)
}
