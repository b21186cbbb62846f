// Package project manages user-submitted project links: finished builds of a
// catalog idea shared back with the community.
package project

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

type projectRepo interface {
	ListByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]domain.ProjectLink, error)
	GetByID(ctx context.Context, linkID uuid.UUID) (*domain.ProjectLink, error)
	CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int, error)
	Create(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error)
	Update(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error)
	Delete(ctx context.Context, linkID uuid.UUID) error
}

type ideaRepo interface {
	GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
}

type projectCounter interface {
	ProjectAdded(ctx context.Context, ideaID uuid.UUID) (count int, ok bool)
	ProjectRemoved(ctx context.Context, ideaID uuid.UUID)
}

// Service provides project link operations.
type Service struct {
	projects projectRepo
	ideas    ideaRepo
	counter  projectCounter
	log      *slog.Logger

	maxPerIdea int
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo, ideas ideaRepo, counter projectCounter, maxPerIdea int) *Service {
	return &Service{
		projects:   projects,
		ideas:      ideas,
		counter:    counter,
		log:        log.With("service", "project"),
		maxPerIdea: maxPerIdea,
	}
}

// tierFromCtx derives the caller's tier from the request context.
func tierFromCtx(ctx context.Context) domain.Tier {
	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return domain.TierAuthenticated
	}
	return domain.TierGuest
}

// validateProjectURL accepts absolute http(s) URLs only.
func validateProjectURL(raw string) *domain.FieldError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &domain.FieldError{Field: "url", Message: "required"}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"}
	}
	return nil
}
