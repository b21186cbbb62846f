package rest

import (
	"net/http"

	"github.com/buildhub-dev/buildhub-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Ideas    *IdeaHandler
	Comments *CommentHandler
	Projects *ProjectHandler
}

// NewRouter mounts all REST routes and wraps them with the given middleware.
// Health probes are mounted outside the chain so they stay reachable even
// when rate limiting kicks in.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	api.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	api.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	api.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	api.HandleFunc("GET /api/v1/ideas", h.Ideas.List)
	api.HandleFunc("GET /api/v1/ideas/{id}", h.Ideas.Get)
	api.HandleFunc("POST /api/v1/ideas/{id}/view", h.Ideas.RecordView)

	api.HandleFunc("GET /api/v1/ideas/{id}/comments", h.Comments.List)
	api.HandleFunc("POST /api/v1/ideas/{id}/comments", h.Comments.Create)
	api.HandleFunc("PATCH /api/v1/comments/{id}", h.Comments.Update)
	api.HandleFunc("DELETE /api/v1/comments/{id}", h.Comments.Delete)
	api.HandleFunc("POST /api/v1/comments/{id}/flag", h.Comments.Flag)

	api.HandleFunc("GET /api/v1/ideas/{id}/projects", h.Projects.List)
	api.HandleFunc("POST /api/v1/ideas/{id}/projects", h.Projects.Create)
	api.HandleFunc("PATCH /api/v1/projects/{id}", h.Projects.Update)
	api.HandleFunc("DELETE /api/v1/projects/{id}", h.Projects.Delete)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", h.Health.Health)
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.Handle("/api/v1/", mw(api))

	return root
}
