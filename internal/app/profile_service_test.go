package app

import (
	"context"
	"testing"

	"jobbox/internal/common"
	"jobbox/internal/domain/profile"
	"jobbox/internal/domain/user"
	"jobbox/internal/integration/jobboard"
)

func TestLoadMergesPartialProfile(t *testing.T) {
	api := &fakeAPI{
		getUser: func(ctx context.Context, token, userID string) (jobboard.User, error) {
			return jobboard.User{
				Email:   "ada@example.com",
				Profile: map[string]any{"skills": []any{"Go"}},
			}, nil
		},
	}
	service := NewProfileService(api)

	loaded, err := service.Load(context.Background(), "tok", "u1", user.RoleStudent)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Email != "ada@example.com" {
		t.Fatalf("email = %q", loaded.Email)
	}
	for key := range profile.StudentDefaults() {
		if _, ok := loaded.Profile[key]; !ok {
			t.Fatalf("merged profile missing key %q", key)
		}
	}
	skills := loaded.Profile["skills"].([]any)
	if len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("skills = %v", skills)
	}
}

func TestLoadWithAbsentProfile(t *testing.T) {
	api := &fakeAPI{
		getUser: func(ctx context.Context, token, userID string) (jobboard.User, error) {
			return jobboard.User{Email: "hr@acme.com"}, nil
		},
	}
	service := NewProfileService(api)

	loaded, err := service.Load(context.Background(), "tok", "u1", user.RoleCompany)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for key, want := range profile.CompanyDefaults() {
		got, ok := loaded.Profile[key]
		if !ok || got == nil {
			t.Fatalf("key %q = %v (want default like %v)", key, got, want)
		}
	}
}

func TestLoadRejectsRolelessSession(t *testing.T) {
	service := NewProfileService(&fakeAPI{})
	_, err := service.Load(context.Background(), "tok", "u1", user.RoleNone)
	if common.CodeOf(err) != common.CodeForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
}

func TestSaveSendsFullReplacePayload(t *testing.T) {
	var sentPayload map[string]any
	api := &fakeAPI{
		updateUser: func(ctx context.Context, token, userID string, payload map[string]any) error {
			sentPayload = payload
			return nil
		},
	}
	service := NewProfileService(api)

	submitted := map[string]any{"fullName": "Ada", "skills": []any{"Go", "SQL"}}
	if err := service.Save(context.Background(), "tok", "u1", user.RoleStudent, submitted); err != nil {
		t.Fatalf("save: %v", err)
	}
	inner, ok := sentPayload["profile"].(map[string]any)
	if !ok {
		t.Fatalf("payload = %v", sentPayload)
	}
	if inner["fullName"] != "Ada" {
		t.Fatalf("fullName = %v", inner["fullName"])
	}
	for key := range profile.StudentDefaults() {
		if _, ok := inner[key]; !ok {
			t.Fatalf("save payload missing key %q", key)
		}
	}
}
