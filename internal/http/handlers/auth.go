package handlers

import (
	"net/http"
	"time"

	"jobbox/internal/app"
	"jobbox/internal/common"
	"jobbox/internal/domain/user"
	"jobbox/internal/http/middleware"
	"jobbox/internal/http/response"
	"jobbox/internal/session"
)

type AuthHandler struct {
	auth     *app.AuthService
	sessions *session.Manager
	limiter  middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, sessions *session.Manager, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, limiter: limiter}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Role     string `json:"role"`
	UserID   string `json:"userId"`
	Redirect string `json:"redirect"`
}

type signupRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     string         `json:"role"`
	Profile  map[string]any `json:"profile"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	UserID        string `json:"userId,omitempty"`
}

// LoginPage is the public-only navigation target; the view layer
// renders the form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"page": "login"})
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"page": "signup"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow("login:"+middleware.ClientIP(r), 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many login attempts", nil))
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	outcome, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.sessions.Login(w, r, outcome.Token, outcome.Role, outcome.UserID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, loginResponse{
		Role:     string(outcome.Role),
		UserID:   outcome.UserID,
		Redirect: middleware.DefaultPath(outcome.Role),
	})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow("signup:"+middleware.ClientIP(r), 5, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many signup attempts", nil))
		return
	}
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	role := user.ParseRole(req.Role)
	if err := h.auth.Register(r.Context(), role, req.Email, req.Password, req.Profile); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]string{"message": "registered", "redirect": "/login"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

// Session reports the current login state for the navigation bar.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.Current(r)
	if !current.Authenticated() {
		response.JSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}
	response.JSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Role:          string(current.Role),
		UserID:        current.UserID,
	})
}
