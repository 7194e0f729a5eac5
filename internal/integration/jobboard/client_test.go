package jobboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobbox/internal/common"
	"jobbox/internal/domain/application"
)

func TestLoginDecodesSessionTriple(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "ada@example.com" || body["password"] != "secret" {
			t.Fatalf("body = %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "t1", "role": "student", "userId": "u1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	result, err := client.Login(context.Background(), "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token != "t1" || result.Role != "student" || result.UserID != "u1" {
		t.Fatalf("result = %+v", result)
	}
}

func TestAuthorizationHeaderCarriesTokenVerbatim(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"email": "a@b.com", "profile": map[string]any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	if _, err := client.GetUser(context.Background(), "opaque-token-123", "u1"); err != nil {
		t.Fatalf("get user: %v", err)
	}
	if seen != "opaque-token-123" {
		t.Fatalf("Authorization = %q, want the token verbatim", seen)
	}
}

func TestErrorMappingPreservesServerMessage(t *testing.T) {
	tests := []struct {
		status   int
		body     string
		wantCode common.ErrorCode
		wantMsg  string
	}{
		{http.StatusUnauthorized, `{"message":"invalid credentials"}`, common.CodeUnauthorized, "invalid credentials"},
		{http.StatusBadRequest, `{"error":"validation"}`, common.CodeValidation, "validation"},
		{http.StatusNotFound, `{}`, common.CodeNotFound, "job board request failed"},
		{http.StatusInternalServerError, `not json`, common.CodeUpstream, "job board request failed"},
		{http.StatusTooManyRequests, `{"message":"slow down"}`, common.CodeRateLimited, "slow down"},
	}
	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(tt.body))
		}))
		client := NewClient(server.URL, server.Client())
		_, err := client.ListJobs(context.Background(), "")
		server.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		appErr, ok := common.AsAppError(err)
		if !ok {
			t.Fatalf("status %d: err = %v", tt.status, err)
		}
		if appErr.Code != tt.wantCode || appErr.Message != tt.wantMsg {
			t.Fatalf("status %d: got (%s, %q), want (%s, %q)", tt.status, appErr.Code, appErr.Message, tt.wantCode, tt.wantMsg)
		}
	}
}

func TestApplyReturnsServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/jobs/j1/apply" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "applied"})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	message, err := client.Apply(context.Background(), "tok", "j1")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if message != "applied" {
		t.Fatalf("message = %q", message)
	}
}

func TestUpdateApplicationStatusRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/jobs/j1/status/a1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "accepted" {
			t.Fatalf("body = %v", body)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	err := client.UpdateApplicationStatus(context.Background(), "tok", "j1", "a1", application.StatusAccepted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
}

func TestUnconfiguredBaseURL(t *testing.T) {
	client := NewClient("  ", nil)
	_, err := client.ListJobs(context.Background(), "")
	if common.CodeOf(err) != common.CodeUpstream {
		t.Fatalf("err = %v, want upstream", err)
	}
}
