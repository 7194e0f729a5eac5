package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobbox/internal/domain/user"
)

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), 3600)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	record := Session{Token: "tok", Role: user.RoleCompany, UserID: "u1"}
	if err := store.Save(recorder, request, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range recorder.Result().Cookies() {
		next.AddCookie(cookie)
	}
	loaded, err := store.Load(next)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != record {
		t.Fatalf("loaded = %+v, want %+v", loaded, record)
	}
}

func TestCookieStoreTamperedCookieIsLoggedOut(t *testing.T) {
	store := NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), 3600)
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: cookieName, Value: "garbage"})

	loaded, err := store.Load(request)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Authenticated() {
		t.Fatalf("tampered cookie produced a session: %+v", loaded)
	}
}

func TestCookieStoreClear(t *testing.T) {
	store := NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), 3600)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := store.Save(recorder, request, Session{Token: "tok", Role: user.RoleStudent, UserID: "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	clearRecorder := httptest.NewRecorder()
	withCookie := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, cookie := range recorder.Result().Cookies() {
		withCookie.AddCookie(cookie)
	}
	if err := store.Clear(clearRecorder, withCookie); err != nil {
		t.Fatalf("clear: %v", err)
	}

	// The clearing response carries the expired replacement cookie.
	after := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range clearRecorder.Result().Cookies() {
		after.AddCookie(cookie)
	}
	loaded, err := store.Load(after)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if loaded.Authenticated() {
		t.Fatalf("session survived clear: %+v", loaded)
	}
}
