// Package jobboard is the HTTP client for the remote job-board REST
// API. The API is an external collaborator: this client shapes
// requests, relays the session token verbatim in the Authorization
// header, and maps failure payloads onto the module's error codes.
package jobboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobbox/internal/common"
	"jobbox/internal/domain/application"
	"jobbox/internal/domain/job"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: trimmed, httpClient: httpClient}
}

type LoginResult struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

type RegisterRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     string         `json:"role"`
	Profile  map[string]any `json:"profile"`
}

type User struct {
	Email   string         `json:"email"`
	Profile map[string]any `json:"profile"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/users/login", "", payload, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/users/register", "", req, nil)
}

func (c *Client) GetUser(ctx context.Context, token, userID string) (User, error) {
	var result User
	if err := c.do(ctx, http.MethodGet, "/users/"+userID, token, nil, &result); err != nil {
		return User{}, err
	}
	return result, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, userID string, payload map[string]any) error {
	return c.do(ctx, http.MethodPatch, "/users/"+userID, token, payload, nil)
}

func (c *Client) ListJobs(ctx context.Context, token string) ([]job.Job, error) {
	var result []job.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetJob(ctx context.Context, token, jobID string) (job.Job, error) {
	var result job.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+jobID, token, nil, &result); err != nil {
		return job.Job{}, err
	}
	return result, nil
}

func (c *Client) CreateJob(ctx context.Context, token string, posting job.Job) error {
	return c.do(ctx, http.MethodPost, "/jobs", token, posting, nil)
}

func (c *Client) UpdateJob(ctx context.Context, token, jobID string, partial map[string]any) error {
	return c.do(ctx, http.MethodPatch, "/jobs/"+jobID, token, partial, nil)
}

func (c *Client) DeleteJob(ctx context.Context, token, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+jobID, token, nil, nil)
}

// Apply submits an application and returns the server's confirmation
// message.
func (c *Client) Apply(ctx context.Context, token, jobID string) (string, error) {
	var result struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/jobs/"+jobID+"/apply", token, map[string]any{}, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) ListApplicants(ctx context.Context, token, userID string) ([]application.Group, error) {
	var result []application.Group
	if err := c.do(ctx, http.MethodGet, "/jobs/applicants/"+userID, token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, token, jobID, applicantID string, status application.Status) error {
	payload := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPut, "/jobs/"+jobID+"/status/"+applicantID, token, payload, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if c.baseURL == "" {
		return common.NewError(common.CodeUpstream, "job board API is not configured", nil)
	}
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// The token travels verbatim; this client never inspects it.
		req.Header.Set("Authorization", token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.NewError(common.CodeUpstream, "job board API is unreachable", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.NewError(common.CodeUpstream, "read job board response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapAPIError(resp.StatusCode, payload)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return common.NewError(common.CodeUpstream, "decode job board response", err)
	}
	return nil
}

func mapAPIError(status int, payload []byte) error {
	message := ""
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err == nil {
		message = strings.TrimSpace(parsed.Message)
		if message == "" {
			message = strings.TrimSpace(parsed.Error)
		}
	}
	if message == "" {
		message = "job board request failed"
	}
	switch status {
	case http.StatusBadRequest:
		return common.NewError(common.CodeValidation, message, nil)
	case http.StatusUnauthorized:
		return common.NewError(common.CodeUnauthorized, message, nil)
	case http.StatusForbidden:
		return common.NewError(common.CodeForbidden, message, nil)
	case http.StatusNotFound:
		return common.NewError(common.CodeNotFound, message, nil)
	case http.StatusConflict:
		return common.NewError(common.CodeConflict, message, nil)
	case http.StatusTooManyRequests:
		return common.NewError(common.CodeRateLimited, message, nil)
	default:
		return common.NewError(common.CodeUpstream, message, nil)
	}
}
