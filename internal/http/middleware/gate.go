package middleware

import (
	"context"
	"net/http"

	"jobbox/internal/authgate"
	"jobbox/internal/common"
	"jobbox/internal/domain/user"
	"jobbox/internal/http/response"
	"jobbox/internal/session"
)

const ContextSessionKey contextKey = "session"

// Gate evaluates a view's access requirement against the current
// session once per request and acts on the decision: the gate itself
// is pure, this middleware does the responding. Denied page loads get
// a 303 to a safe destination; denied mutations get a JSON error, so
// an API caller never has a rejected POST turn into a followed GET.
type Gate struct {
	sessions *session.Manager
}

func NewGate(sessions *session.Manager) *Gate {
	return &Gate{sessions: sessions}
}

func (g *Gate) Require(req authgate.Requirement) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := g.sessions.Current(r)
			switch authgate.Decide(req, current) {
			case authgate.Allow:
				ctx := context.WithValue(r.Context(), ContextSessionKey, current)
				next.ServeHTTP(w, r.WithContext(ctx))
			case authgate.RedirectLogin:
				if isMutation(r.Method) {
					response.Error(w, common.NewError(common.CodeUnauthorized, "login required", nil))
					return
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			default:
				if isMutation(r.Method) {
					response.Error(w, common.NewError(common.CodeForbidden, "not allowed for this role", nil))
					return
				}
				http.Redirect(w, r, DefaultPath(current.Role), http.StatusSeeOther)
			}
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead:
		return false
	default:
		return true
	}
}

// DefaultPath is the safe landing page for a role.
func DefaultPath(role user.Role) string {
	switch role {
	case user.RoleCompany:
		return "/dashboard"
	case user.RoleStudent:
		return "/jobs"
	default:
		return "/"
	}
}

// SessionFromContext returns the session snapshot the gate attached.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	current, ok := ctx.Value(ContextSessionKey).(session.Session)
	return current, ok
}
