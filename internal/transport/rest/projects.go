package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	ListProjects(ctx context.Context, input project.ListProjectsInput) ([]domain.ProjectLink, error)
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*project.CreateResult, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.ProjectLink, error)
	DeleteProject(ctx context.Context, input project.DeleteProjectInput) error
}

// ProjectHandler serves project link REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "projects")}
}

type projectResponse struct {
	ID          string    `json:"id"`
	IdeaID      string    `json:"ideaId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	ToolsUsed   []string  `json:"toolsUsed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type createProjectRequest struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description *string  `json:"description,omitempty"`
	ToolsUsed   []string `json:"toolsUsed,omitempty"`
}

type createProjectResponse struct {
	Project      projectResponse `json:"project"`
	ProjectCount int             `json:"projectCount"`
}

type updateProjectRequest struct {
	Title       *string  `json:"title,omitempty"`
	URL         *string  `json:"url,omitempty"`
	Description *string  `json:"description,omitempty"`
	ToolsUsed   []string `json:"toolsUsed,omitempty"`
}

// List handles GET /api/v1/ideas/{id}/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ideaID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	links, err := h.svc.ListProjects(r.Context(), project.ListProjectsInput{IdeaID: ideaID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]projectResponse, 0, len(links))
	for i := range links {
		out = append(out, toProjectResponse(&links[i]))
	}

	writeData(w, http.StatusOK, map[string][]projectResponse{"projects": out})
}

// Create handles POST /api/v1/ideas/{id}/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ideaID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	result, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{
		IdeaID:      ideaID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		ToolsUsed:   req.ToolsUsed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, createProjectResponse{
		Project:      toProjectResponse(&result.Link),
		ProjectCount: result.ProjectCount,
	})
}

// Update handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	link, err := h.svc.UpdateProject(r.Context(), project.UpdateProjectInput{
		ProjectID:   projectID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		ToolsUsed:   req.ToolsUsed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toProjectResponse(link))
}

// Delete handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), project.DeleteProjectInput{ProjectID: projectID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toProjectResponse(link *domain.ProjectLink) projectResponse {
	return projectResponse{
		ID:          link.ID.String(),
		IdeaID:      link.IdeaID.String(),
		Title:       link.Title,
		URL:         link.URL,
		Description: link.Description,
		ToolsUsed:   link.ToolsUsed,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}
