package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobbox/internal/authgate"
	"jobbox/internal/domain/user"
	"jobbox/internal/http/handlers"
	"jobbox/internal/http/metrics"
	httpmw "jobbox/internal/http/middleware"
	"jobbox/internal/http/response"
)

type RouterDependencies struct {
	AuthHandler      *handlers.AuthHandler
	ProfileHandler   *handlers.ProfileHandler
	JobHandler       *handlers.JobHandler
	ApplicantHandler *handlers.ApplicantHandler
	MetricsHandler   *handlers.MetricsHandler
	Gate             *httpmw.Gate
	Metrics          *metrics.Collector
	Logger           *zap.Logger
	RequestTimeout   time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	gate := r.deps.Gate
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path
		segments := pathSegments(path)

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/":
			response.JSON(w, http.StatusOK, map[string]string{"page": "home"})
			return
		case req.Method == http.MethodGet && path == "/session":
			r.deps.AuthHandler.Session(w, req)
			return

		case req.Method == http.MethodGet && path == "/login":
			gated(gate, authgate.PublicOnly(), r.deps.AuthHandler.LoginPage).ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && path == "/signup":
			gated(gate, authgate.PublicOnly(), r.deps.AuthHandler.SignupPage).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/login":
			gated(gate, authgate.PublicOnly(), r.deps.AuthHandler.Login).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/signup":
			gated(gate, authgate.PublicOnly(), r.deps.AuthHandler.Signup).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/logout":
			gated(gate, authgate.AnyAuthenticated(), r.deps.AuthHandler.Logout).ServeHTTP(w, req)
			return

		case req.Method == http.MethodGet && path == "/profile":
			gated(gate, authgate.AnyAuthenticated(), r.deps.ProfileHandler.Get).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPatch && path == "/profile":
			gated(gate, authgate.AnyAuthenticated(), r.deps.ProfileHandler.Update).ServeHTTP(w, req)
			return

		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && len(segments) == 2 && segments[0] == "jobs":
			r.deps.JobHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/jobs":
			gated(gate, authgate.Roles(user.RoleCompany), r.deps.JobHandler.Post).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPatch && len(segments) == 2 && segments[0] == "jobs":
			gated(gate, authgate.Roles(user.RoleCompany), r.deps.JobHandler.Update).ServeHTTP(w, req)
			return
		case req.Method == http.MethodDelete && len(segments) == 2 && segments[0] == "jobs":
			gated(gate, authgate.Roles(user.RoleCompany), r.deps.JobHandler.Delete).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && len(segments) == 3 && segments[0] == "jobs" && segments[2] == "apply":
			gated(gate, authgate.Roles(user.RoleStudent), r.deps.JobHandler.Apply).ServeHTTP(w, req)
			return

		case req.Method == http.MethodGet && path == "/dashboard":
			gated(gate, authgate.Roles(user.RoleCompany), r.deps.JobHandler.Dashboard).ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && path == "/applicants":
			gated(gate, authgate.Roles(user.RoleCompany), r.deps.ApplicantHandler.List).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPut && len(segments) == 5 && segments[0] == "jobs" && segments[2] == "applicants" && segments[4] == "status":
			gated(gate, authgate.Roles(user.RoleCompany), r.deps.ApplicantHandler.UpdateStatus).ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func gated(gate *httpmw.Gate, req authgate.Requirement, handler http.HandlerFunc) http.Handler {
	return gate.Require(req)(handler)
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
