package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

// ListProjects returns the project links submitted for an idea, newest first.
// Visibility follows the idea itself.
func (s *Service) ListProjects(ctx context.Context, input ListProjectsInput) ([]domain.ProjectLink, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	idea, err := s.ideas.GetByID(ctx, input.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if !idea.VisibleTo(tierFromCtx(ctx)) {
		return nil, fmt.Errorf("idea %s: %w", input.IdeaID, domain.ErrForbidden)
	}

	links, err := s.projects.ListByIdeaID(ctx, input.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return links, nil
}

// CreateResult is a freshly submitted link plus the idea's updated project
// total, so the caller can refresh its aggregate display in one round trip.
type CreateResult struct {
	Link         domain.ProjectLink
	ProjectCount int
}

// CreateProject submits a project link for the authenticated user.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ideas.GetByID(ctx, input.IdeaID); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	existing, err := s.projects.CountByIdeaID(ctx, input.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if existing >= s.maxPerIdea {
		return nil, domain.NewValidationError("idea_id", "project limit reached for this idea")
	}

	created, err := s.projects.Create(ctx, &domain.ProjectLink{
		IdeaID:      input.IdeaID,
		AuthorID:    userID,
		Title:       strings.TrimSpace(input.Title),
		URL:         strings.TrimSpace(input.URL),
		Description: input.Description,
		ToolsUsed:   input.ToolsUsed,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	// The counter's RETURNING value stays consistent under concurrent
	// submissions; the row count is only a fallback when the best-effort
	// adjustment failed (logged there, repaired by the reconciler).
	count, ok := s.counter.ProjectAdded(ctx, input.IdeaID)
	if !ok {
		count = existing + 1
	}

	s.log.InfoContext(ctx, "project link created",
		slog.String("user_id", userID.String()),
		slog.String("idea_id", input.IdeaID.String()),
		slog.String("project_id", created.ID.String()),
	)

	return &CreateResult{Link: *created, ProjectCount: count}, nil
}

// UpdateProject edits a project link. Author-only.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.ProjectLink, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if existing.AuthorID != userID {
		return nil, fmt.Errorf("project_link %s: %w", input.ProjectID, domain.ErrForbidden)
	}

	if input.Title != nil {
		existing.Title = strings.TrimSpace(*input.Title)
	}
	if input.URL != nil {
		existing.URL = strings.TrimSpace(*input.URL)
	}
	if input.Description != nil {
		if trimmed := strings.TrimSpace(*input.Description); trimmed == "" {
			existing.Description = nil
		} else {
			existing.Description = &trimmed
		}
	}
	if input.ToolsUsed != nil {
		existing.ToolsUsed = input.ToolsUsed
	}

	updated, err := s.projects.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.InfoContext(ctx, "project link updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
	)

	return updated, nil
}

// DeleteProject removes a project link. Author-only.
func (s *Service) DeleteProject(ctx context.Context, input DeleteProjectInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	existing, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if existing.AuthorID != userID {
		return fmt.Errorf("project_link %s: %w", input.ProjectID, domain.ErrForbidden)
	}

	if err := s.projects.Delete(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.counter.ProjectRemoved(ctx, existing.IdeaID)

	s.log.InfoContext(ctx, "project link deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
	)

	return nil
}
