package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"jobbox/internal/app"
	"jobbox/internal/common"
	"jobbox/internal/domain/application"
	"jobbox/internal/domain/job"
	"jobbox/internal/domain/user"
	"jobbox/internal/integration/jobboard"
	"jobbox/internal/session"
)

// stubAPI satisfies app.API; login is the only call these tests hit.
type stubAPI struct {
	loginResult jobboard.LoginResult
	loginErr    error
}

func (s *stubAPI) Login(ctx context.Context, email, password string) (jobboard.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAPI) Register(ctx context.Context, req jobboard.RegisterRequest) error { return nil }

func (s *stubAPI) GetUser(ctx context.Context, token, userID string) (jobboard.User, error) {
	return jobboard.User{}, nil
}

func (s *stubAPI) UpdateUser(ctx context.Context, token, userID string, payload map[string]any) error {
	return nil
}

func (s *stubAPI) ListJobs(ctx context.Context, token string) ([]job.Job, error) { return nil, nil }

func (s *stubAPI) GetJob(ctx context.Context, token, jobID string) (job.Job, error) {
	return job.Job{}, nil
}

func (s *stubAPI) CreateJob(ctx context.Context, token string, posting job.Job) error { return nil }

func (s *stubAPI) UpdateJob(ctx context.Context, token, jobID string, partial map[string]any) error {
	return nil
}

func (s *stubAPI) DeleteJob(ctx context.Context, token, jobID string) error { return nil }

func (s *stubAPI) Apply(ctx context.Context, token, jobID string) (string, error) { return "", nil }

func (s *stubAPI) ListApplicants(ctx context.Context, token, userID string) ([]application.Group, error) {
	return nil, nil
}

func (s *stubAPI) UpdateApplicationStatus(ctx context.Context, token, jobID, applicantID string, status application.Status) error {
	return nil
}

func TestLoginStoresSessionAndPointsAtRoleHome(t *testing.T) {
	api := &stubAPI{loginResult: jobboard.LoginResult{Token: "t1", Role: "company", UserID: "u1"}}
	sessions := session.NewManager(session.NewMemStore())
	handler := NewAuthHandler(app.NewAuthService(api, zap.NewNop()), sessions, nil)

	body := strings.NewReader(`{"email":"hr@acme.com","password":"secret"}`)
	request := httptest.NewRequest(http.MethodPost, "/login", body)
	recorder := httptest.NewRecorder()
	handler.Login(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Role     string `json:"role"`
		UserID   string `json:"userId"`
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Role != "company" || resp.UserID != "u1" || resp.Redirect != "/dashboard" {
		t.Fatalf("response = %+v", resp)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range recorder.Result().Cookies() {
		next.AddCookie(cookie)
	}
	if sessions.CurrentRole(next) != user.RoleCompany {
		t.Fatal("login response did not persist a session")
	}
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	api := &stubAPI{loginErr: common.NewError(common.CodeUnauthorized, "invalid credentials", nil)}
	sessions := session.NewManager(session.NewMemStore())
	handler := NewAuthHandler(app.NewAuthService(api, zap.NewNop()), sessions, nil)

	body := strings.NewReader(`{"email":"hr@acme.com","password":"wrong"}`)
	request := httptest.NewRequest(http.MethodPost, "/login", body)
	recorder := httptest.NewRecorder()
	handler.Login(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", recorder.Code)
	}
	if len(recorder.Result().Cookies()) != 0 {
		t.Fatal("failed login must not set a session cookie")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := session.NewManager(session.NewMemStore())
	handler := NewAuthHandler(app.NewAuthService(&stubAPI{}, zap.NewNop()), sessions, nil)

	loginRecorder := httptest.NewRecorder()
	loginRequest := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := sessions.Login(loginRecorder, loginRequest, "t1", user.RoleStudent, "u1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, cookie := range loginRecorder.Result().Cookies() {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	handler.Logout(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if sessions.IsAuthenticated(request) {
		t.Fatal("session survived logout")
	}
}
